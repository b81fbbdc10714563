package service

import (
	"context"
	"strings"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
)

// dogServiceImpl is the production implementation of DogService.
type dogServiceImpl struct {
	repo repository.DogRepository
}

// NewDogService creates a DogService backed by the given repository.
func NewDogService(repo repository.DogRepository) DogService {
	return &dogServiceImpl{repo: repo}
}

// isHTTPURL reports whether s starts with http:// or https://, the shape
// check applied to the main photo and every gallery image.
func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// validGender reports whether g is exactly Male or Female. Matching is
// case-sensitive.
func validGender(g string) bool {
	return g == model.GenderMale || g == model.GenderFemale
}

func validateGallery(g *model.GallerySection) error {
	if g == nil {
		return nil
	}
	for _, img := range g.Images {
		if !isHTTPURL(img) {
			return &ValidationError{Message: "gallery images must be http(s) URLs", Fields: []string{"gallery.images"}}
		}
	}
	return nil
}

func validateProcess(p *model.ProcessSection) error {
	if p == nil {
		return nil
	}
	for _, step := range p.Steps {
		if step.Number < 1 {
			return &ValidationError{Message: "step number must be 1 or greater", Fields: []string{"adoptionProcess.steps.number"}}
		}
		if strings.TrimSpace(step.Title) == "" || strings.TrimSpace(step.Description) == "" {
			return &ValidationError{Message: "each step requires a title and description", Fields: []string{"adoptionProcess.steps"}}
		}
	}
	return nil
}

// Create validates the submission and persists a new listing. Validation
// short-circuits before any persistence call.
func (s *dogServiceImpl) Create(ctx context.Context, in DogInput) (*model.Dog, error) {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	// Zero is a valid age; only an absent or null age is missing.
	if in.Age == nil {
		missing = append(missing, "age")
	}
	if in.Gender == "" {
		missing = append(missing, "gender")
	}
	if strings.TrimSpace(in.Breed) == "" {
		missing = append(missing, "breed")
	}
	if in.PhotoURL == "" {
		missing = append(missing, "photoUrl")
	}
	if len(missing) > 0 {
		return nil, newMissingFieldsError(missing)
	}

	if *in.Age < 0 {
		return nil, &ValidationError{Message: "age must not be negative", Fields: []string{"age"}}
	}
	if !validGender(in.Gender) {
		return nil, &ValidationError{Message: "gender must be Male or Female", Fields: []string{"gender"}}
	}
	if !isHTTPURL(in.PhotoURL) {
		return nil, &ValidationError{Message: "photoUrl must be an http(s) URL", Fields: []string{"photoUrl"}}
	}
	if err := validateGallery(in.Gallery); err != nil {
		return nil, err
	}
	if err := validateProcess(in.AdoptionProcess); err != nil {
		return nil, err
	}

	dog := &model.Dog{
		Name:       strings.TrimSpace(in.Name),
		Subheading: strings.TrimSpace(in.Subheading),
		PhotoURL:   in.PhotoURL,
		Age:        *in.Age,
		Gender:     in.Gender,
		Breed:      strings.TrimSpace(in.Breed),
		Size:       strings.TrimSpace(in.Size),
	}
	if in.Story != nil {
		dog.Story = *in.Story
	}
	if in.Gallery != nil {
		dog.Gallery = *in.Gallery
	}
	if in.AdoptionProcess != nil {
		dog.AdoptionProcess = *in.AdoptionProcess
	}

	if err := s.repo.Create(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

// GetByID returns one listing as a fresh snapshot.
func (s *dogServiceImpl) GetByID(ctx context.Context, id string) (*model.Dog, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all listings, newest first.
func (s *dogServiceImpl) List(ctx context.Context) ([]*model.Dog, error) {
	return s.repo.List(ctx)
}

// Update applies the provided fields after validating each against the
// creation rules.
func (s *dogServiceImpl) Update(ctx context.Context, id string, patch model.DogPatch) (*model.Dog, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, &ValidationError{Message: "name must not be empty", Fields: []string{"name"}}
	}
	if patch.Age != nil && *patch.Age < 0 {
		return nil, &ValidationError{Message: "age must not be negative", Fields: []string{"age"}}
	}
	if patch.Gender != nil && !validGender(*patch.Gender) {
		return nil, &ValidationError{Message: "gender must be Male or Female", Fields: []string{"gender"}}
	}
	if patch.Breed != nil && strings.TrimSpace(*patch.Breed) == "" {
		return nil, &ValidationError{Message: "breed must not be empty", Fields: []string{"breed"}}
	}
	if patch.PhotoURL != nil && !isHTTPURL(*patch.PhotoURL) {
		return nil, &ValidationError{Message: "photoUrl must be an http(s) URL", Fields: []string{"photoUrl"}}
	}
	if err := validateGallery(patch.Gallery); err != nil {
		return nil, err
	}
	if err := validateProcess(patch.AdoptionProcess); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a listing.
func (s *dogServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
