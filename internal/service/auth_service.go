package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"sportmatch/internal/auth"
	apperrors "sportmatch/internal/errors"
	"sportmatch/internal/logger"
	"sportmatch/internal/model"
	"sportmatch/internal/repository"
)

// AuthService issues tokens and resolves them back into users.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ResolveCurrentUser(ctx context.Context, token string) (*model.User, error)
	RequireAdmin(user *model.User) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	log        *logger.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, log *logger.Logger) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		log:        log.Named("auth"),
	}
}

// Login authenticates by email and password and returns a signed access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.IssueToken(user.ID, string(user.Role), user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// ResolveCurrentUser validates the token and loads its subject. The returned
// user always carries the stored role; the token's role claim is not trusted.
func (s *authService) ResolveCurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		s.log.Debugw("token rejected", "error", err)
		return nil, apperrors.ErrInvalidToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, fmt.Errorf("load token subject: %w", err)
	}

	if claims.Role != "" && claims.Role != string(user.Role) {
		s.log.Infow("token role differs from stored role", "user_id", user.ID, "token_role", claims.Role, "stored_role", user.Role)
	}
	return user, nil
}

// RequireAdmin passes the user through if they hold the admin role.
func (s *authService) RequireAdmin(user *model.User) (*model.User, error) {
	if user == nil || !user.IsAdmin() {
		return nil, apperrors.ErrAdminOnly
	}
	return user, nil
}
