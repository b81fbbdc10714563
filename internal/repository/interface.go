package repository

import (
	"context"

	"github.com/fourpaws/backend/internal/model"
)

// DB is the minimal liveness interface used by the health handler.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository is the persistence interface for user accounts.
//
// List deliberately returns records with the password hash left empty: the
// projection used by implementations must never select the password column.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, id string, patch model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id string) error
}
