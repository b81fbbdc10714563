package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
	"github.com/google/uuid"
)

// adoptionServiceImpl is the production implementation of AdoptionService.
type adoptionServiceImpl struct {
	repo    repository.AdoptionRepository
	dogRepo repository.DogRepository
}

// NewAdoptionService creates an AdoptionService backed by the given
// repositories. The dog repository is used to verify the referenced listing
// exists before an application is stored.
func NewAdoptionService(repo repository.AdoptionRepository, dogRepo repository.DogRepository) AdoptionService {
	return &adoptionServiceImpl{repo: repo, dogRepo: dogRepo}
}

// Submit validates and stores an adoption application.
func (s *adoptionServiceImpl) Submit(ctx context.Context, app *model.AdoptionApplication) error {
	var missing []string
	if strings.TrimSpace(app.DogID) == "" {
		missing = append(missing, "dogId")
	}
	if strings.TrimSpace(app.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(app.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(app.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(app.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	// The lookup below would otherwise surface a uuid cast failure from
	// the database as a server error.
	if _, err := uuid.Parse(app.DogID); err != nil {
		return &ValidationError{Message: "Invalid dog ID"}
	}

	if app.HomeOwnership != "" && app.HomeOwnership != model.OwnershipOwn && app.HomeOwnership != model.OwnershipRent {
		return &ValidationError{Message: "homeOwnership must be own or rent", Fields: []string{"homeOwnership"}}
	}
	if app.FencedYard != "" && app.FencedYard != model.FencedYardYes && app.FencedYard != model.FencedYardNo {
		return &ValidationError{Message: "fencedYard must be yes or no", Fields: []string{"fencedYard"}}
	}

	if _, err := s.dogRepo.FindByID(ctx, app.DogID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownDog
		}
		return fmt.Errorf("lookup dog: %w", err)
	}

	return s.repo.Save(ctx, app)
}

// List returns all stored applications, newest first.
func (s *adoptionServiceImpl) List(ctx context.Context) ([]*model.AdoptionApplication, error) {
	return s.repo.List(ctx)
}
