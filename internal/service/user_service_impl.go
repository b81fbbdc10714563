package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
	"github.com/fourpaws/backend/pkg/auth"
)

// userServiceImpl is the production implementation of UserService.
type userServiceImpl struct {
	userRepo repository.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// List returns all users without password hashes.
func (s *userServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// Update applies only the fields present in the input. A new password is
// hashed before it reaches the repository.
func (s *userServiceImpl) Update(ctx context.Context, id string, in UserUpdateInput) (*model.User, error) {
	patch := model.UserPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	if in.Password != nil {
		hashed, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.Password = &hashed
	}

	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Delete removes a user account. Absence of the target surfaces as
// repository.ErrNotFound.
func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
