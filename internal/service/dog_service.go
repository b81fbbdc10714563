package service

import (
	"context"

	"github.com/fourpaws/backend/internal/model"
)

// DogInput carries the fields of a dog-listing submission. Age is a pointer
// so that an absent age can be told apart from a valid age of zero. The
// nested sections are optional and pass through structurally.
type DogInput struct {
	Name            string
	Subheading      string
	PhotoURL        string
	Age             *float64
	Gender          string
	Breed           string
	Size            string
	Story           *model.StorySection
	Gallery         *model.GallerySection
	AdoptionProcess *model.ProcessSection
}

// DogService defines the business logic for dog listings.
type DogService interface {
	// Create validates the input and persists a new listing.
	Create(ctx context.Context, in DogInput) (*model.Dog, error)

	// GetByID returns one listing, or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Dog, error)

	// List returns all listings as detached snapshots.
	List(ctx context.Context) ([]*model.Dog, error)

	// Update applies only the provided fields, validating each against the
	// same rules as Create, and returns the updated listing.
	Update(ctx context.Context, id string, patch model.DogPatch) (*model.Dog, error)

	// Delete removes a listing.
	Delete(ctx context.Context, id string) error
}
