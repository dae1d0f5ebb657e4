package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sportmatch/internal/auth"
	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	birth := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	input := CreateUserInput{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "password123",
		FullName:  strPtr("Alice Doe"),
		BirthDate: &birth,
	}

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "email taken",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 1}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "username taken",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "alice").Return(&model.User{ID: 1}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
		{
			name: "lost race on unique index",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			tt.setupMock(store.users)

			svc := NewUserService(store, nil)
			user, err := svc.CreateUser(context.Background(), input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.True(t, auth.VerifyPassword("password123", user.PasswordHash))
				require.NotNil(t, user.BirthDate)
				assert.Equal(t, birth, time.Time(*user.BirthDate))
			}
			store.users.AssertExpectations(t)
		})
	}
}

func TestUserService_GetUser(t *testing.T) {
	store := newMockStore()
	store.users.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "alice"}, nil)
	store.users.On("FindByID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(store, nil)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetUser(context.Background(), 2)
	assert.Equal(t, apperrors.ErrUserNotFound, err)
}
