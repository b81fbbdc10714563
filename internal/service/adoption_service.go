package service

import (
	"context"

	"github.com/fourpaws/backend/internal/model"
)

// AdoptionService defines the business logic for adoption applications.
type AdoptionService interface {
	// Submit validates and stores a new application. The referenced dog
	// must exist; orphan references are rejected with ErrUnknownDog.
	Submit(ctx context.Context, app *model.AdoptionApplication) error

	// List returns all stored applications for admin review.
	List(ctx context.Context) ([]*model.AdoptionApplication, error)
}
