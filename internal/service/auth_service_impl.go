package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
	"github.com/fourpaws/backend/pkg/auth"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	userRepo repository.UserRepository
	secret   []byte
}

// NewAuthService creates an AuthService backed by the given repository,
// signing tokens with the given process-wide secret.
func NewAuthService(userRepo repository.UserRepository, secret []byte) AuthService {
	return &authServiceImpl{userRepo: userRepo, secret: secret}
}

// Signup registers a new user. Validation short-circuits before the email
// lookup and before hashing; a duplicate email never mutates storage.
func (s *authServiceImpl) Signup(ctx context.Context, in SignupInput) error {
	var missing []string
	if strings.TrimSpace(in.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(in.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	email := strings.TrimSpace(in.Email)
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("lookup user by email: %w", err)
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		Password:  hashed,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index can still fire between lookup and insert.
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	slog.Info("user registered", "user_id", user.ID)
	return nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both surface as ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user by email: %w", err)
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.CreateToken(user.ID, s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	slog.Info("user logged in", "user_id", user.ID)
	return token, nil
}
