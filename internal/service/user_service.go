package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sportmatch/internal/auth"
	"sportmatch/internal/cache"
	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// CreateUserInput carries the registration fields.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FullName  *string
	Gender    *model.Gender
	BirthDate *time.Time
}

// UserService exposes user registration and lookup.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, page repository.Page) ([]model.User, error)
}

type userService struct {
	store repository.Store
	cache *cache.Client
}

// NewUserService builds a UserService with store and cache.
func NewUserService(store repository.Store, cache *cache.Client) UserService {
	return &userService{store: store, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// CreateUser registers a plain user. Registration never grants the admin role.
func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	users := s.store.Users()

	if err := ensureAbsent(users.FindByEmail(ctx, in.Email)); err != nil {
		if errors.Is(err, errPresent) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("check email: %w", err)
	}
	if err := ensureAbsent(users.FindByUsername(ctx, in.Username)); err != nil {
		if errors.Is(err, errPresent) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Gender:       in.Gender,
		Role:         model.RoleUser,
	}
	if in.BirthDate != nil {
		d := datatypes.Date(*in.BirthDate)
		user.BirthDate = &d
	}

	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page repository.Page) ([]model.User, error) {
	return s.store.Users().List(ctx, page)
}
