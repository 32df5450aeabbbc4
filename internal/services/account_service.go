package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// placeholderName is what API tools prefill into string fields.
const placeholderName = "string"

type AccountService struct {
	users      UserStore
	tokens     *TokenIssuer
	bcryptCost int
}

func NewAccountService(users UserStore, cfg *config.Config) *AccountService {
	return &AccountService{
		users:      users,
		tokens:     NewTokenIssuer(cfg),
		bcryptCost: cfg.BcryptCost,
	}
}

// NormalizeEmail trims and lowercases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || strings.EqualFold(trimmed, placeholderName) {
		return "", false
	}
	return trimmed, true
}

func (s *AccountService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *AccountService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	taken, err := s.users.EmailExists(ctx, email, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailInUse
	}

	name, ok := validName(req.Name)
	if !ok {
		return nil, ErrInvalidName
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         models.RoleUser,
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID.String())
	return s.authResponse(&user)
}

// Login never tells apart an unknown email from a wrong password.
func (s *AccountService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !verify(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	email := NormalizeEmail(req.Email)
	if email != user.Email {
		taken, err := s.users.EmailExists(ctx, email, user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, ErrEmailInUse
		}
	}

	name, ok := validName(req.Name)
	if !ok {
		return nil, ErrInvalidName
	}

	user.Email = email
	user.Name = name
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AccountService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *dto.UpdatePasswordRequest) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !verify(user.PasswordHash, req.CurrentPassword) {
		return ErrIncorrectPassword
	}
	if verify(user.PasswordHash, req.NewPassword) {
		return ErrPasswordUnchanged
	}

	hash, err := s.hash(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteAccount removes the user and every check-in they own.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !verify(user.PasswordHash, password) {
		return ErrIncorrectPassword
	}

	if err := s.users.DeleteUser(ctx, user.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	slog.Info("account deleted", "user_id", user.ID.String())
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (s *AccountService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *AccountService) getUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *AccountService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
