package service

import (
	"context"

	"github.com/fourpaws/backend/internal/model"
)

// UserUpdateInput carries a partial profile update. Nil fields are left
// untouched; Password, when present, is the new plaintext and is re-hashed
// before storage.
type UserUpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// UserService defines user account management business logic.
type UserService interface {
	// List returns all users. The password hash is excluded from the
	// underlying projection and must never appear in the result.
	List(ctx context.Context) ([]*model.User, error)

	// Update applies only the provided fields and returns the updated record.
	Update(ctx context.Context, id string, in UserUpdateInput) (*model.User, error)

	// Delete removes a user account.
	Delete(ctx context.Context, id string) error
}
