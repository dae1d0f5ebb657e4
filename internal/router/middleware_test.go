package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sportmatch/internal/auth"
	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/handler"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
	"sportmatch/internal/service"
)

const brokenUserID = 99

type fakeUserRepository struct {
	users map[uint]*model.User
}

func (f *fakeUserRepository) Create(ctx context.Context, user *model.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	if id == brokenUserID {
		return nil, errors.New("connection refused")
	}
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) List(ctx context.Context, page repository.Page) ([]model.User, error) {
	return nil, nil
}

func newTestServer(t *testing.T) (*echo.Echo, *auth.JWTService) {
	t.Helper()

	repo := &fakeUserRepository{users: map[uint]*model.User{
		1: {ID: 1, Username: "alice", Email: "alice@example.com", Role: model.RoleUser},
		2: {ID: 2, Username: "root", Email: "root@example.com", Role: model.RoleAdmin},
	}}
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	authService := service.NewAuthService(repo, jwtService, logger.Nop())

	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.CurrentUser(c))
	}

	e := echo.New()
	e.GET("/me", ok, Authenticate(authService))
	e.GET("/admin/users", ok, Authenticate(authService), RequireAdmin(authService))
	return e, jwtService
}

func issue(t *testing.T, jwtService *auth.JWTService, id uint, role model.Role) string {
	t.Helper()
	token, err := jwtService.IssueToken(id, string(role), "")
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	e, jwtService := newTestServer(t)
	expired := auth.NewJWTService("test-secret", -time.Minute)

	tests := []struct {
		name       string
		header     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "missing header", path: "/me", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "wrong scheme", header: "Basic abc", path: "/me", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "garbage token", header: "Bearer not-a-jwt", path: "/me", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "expired token", header: "Bearer " + issue(t, expired, 1, model.RoleUser), path: "/me", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "deleted user", header: "Bearer " + issue(t, jwtService, 42, model.RoleUser), path: "/me", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "store failure", header: "Bearer " + issue(t, jwtService, brokenUserID, model.RoleUser), path: "/me", wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
		{name: "valid user", header: "Bearer " + issue(t, jwtService, 1, model.RoleUser), path: "/me", wantStatus: http.StatusOK},
		{name: "user on admin route", header: "Bearer " + issue(t, jwtService, 1, model.RoleUser), path: "/admin/users", wantStatus: http.StatusForbidden, wantCode: "ADMIN_ONLY"},
		{name: "forged admin claim", header: "Bearer " + issue(t, jwtService, 1, model.RoleAdmin), path: "/admin/users", wantStatus: http.StatusForbidden, wantCode: "ADMIN_ONLY"},
		{name: "admin on admin route", header: "Bearer " + issue(t, jwtService, 2, model.RoleAdmin), path: "/admin/users", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			}
			if tt.wantCode != "" {
				var body apperrors.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
			}
		})
	}
}

func TestAuthenticate_PutsStoredUserOnContext(t *testing.T) {
	e, jwtService := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+issue(t, jwtService, 1, model.RoleAdmin))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestRegister_HealthAndValidator(t *testing.T) {
	e := echo.New()
	Register(e, nil, Handlers{
		Auth:     handler.NewAuthHandler(nil),
		User:     handler.NewUserHandler(nil),
		Sport:    handler.NewSportHandler(nil),
		Facility: handler.NewFacilityHandler(nil),
		Activity: handler.NewActivityHandler(nil),
		Match:    handler.NewMatchHandler(nil),
		Booking:  handler.NewBookingHandler(nil),
	}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/healthz/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	type payload struct {
		Name string `validate:"required"`
	}
	assert.Error(t, e.Validator.Validate(&payload{}))
	assert.NoError(t, e.Validator.Validate(&payload{Name: "tennis"}))
}
