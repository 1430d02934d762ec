package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/auth"
	"github.com/spec-kit/travel-planner/internal/config"
	"github.com/spec-kit/travel-planner/internal/domain"
	"github.com/spec-kit/travel-planner/internal/repository"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// AuthService coordinates registration, login, and account settings.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new account and issues its first token. Duplicate email
// or username is a conflict; both checks are backed by unique indexes.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, time.Time, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, "", time.Time{}, apperrors.NewValidationError("username, email and password are required", nil)
	}
	if !emailPattern.MatchString(email) {
		return nil, "", time.Time{}, apperrors.NewValidationError("Please provide a valid email", nil)
	}
	if len(password) < minPasswordLength {
		return nil, "", time.Time{}, apperrors.NewValidationError("Password must be at least 6 characters", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("User already exists", nil)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", time.Time{}, err
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("Username already taken", nil)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("User already exists", nil)
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("Invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// GetProfile returns the account for the given id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, err
	}
	return user, nil
}

// ProfileUpdateInput carries optional profile changes. Name may be cleared;
// email and username are only changed when non-empty.
type ProfileUpdateInput struct {
	Name     *string
	Email    string
	Username string
}

// UpdateProfile applies profile changes after uniqueness checks.
func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, input ProfileUpdateInput) (*domain.User, error) {
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}

	if email := strings.ToLower(strings.TrimSpace(input.Email)); email != "" && email != user.Email {
		if !emailPattern.MatchString(email) {
			return nil, apperrors.NewValidationError("Please provide a valid email", nil)
		}
		if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != user.ID {
			return nil, apperrors.NewConflict("Email already in use", nil)
		} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		user.Email = email
	}

	if username := strings.TrimSpace(input.Username); username != "" && username != user.Username {
		if existing, err := s.users.GetByUsername(ctx, username); err == nil && existing.ID != user.ID {
			return nil, apperrors.NewConflict("Username already taken", nil)
		} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		user.Username = username
	}

	if err := s.users.Update(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflict("Email or username already exists", nil)
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("User", nil)
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperrors.NewValidationError("Please provide current and new passwords", nil)
	}
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidationError("New password must be at least 6 characters", nil)
	}
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidationError("Invalid current password", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("User", nil)
		}
		return err
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
