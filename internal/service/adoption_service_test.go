package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

// ---------------------------------------------------------------------------
// mockAdoptionRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockAdoptionRepository struct {
	saveFunc func(ctx context.Context, app *model.AdoptionApplication) error
	listFunc func(ctx context.Context) ([]*model.AdoptionApplication, error)
}

func (m *mockAdoptionRepository) Save(ctx context.Context, app *model.AdoptionApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	return nil
}

func (m *mockAdoptionRepository) List(ctx context.Context) ([]*model.AdoptionApplication, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

const (
	knownDogID = "5a8f0c3e-2b1d-4e6f-9a7b-8c0d1e2f3a4b"
	otherDogID = "1b2c3d4e-5f60-4a7b-8c9d-0e1f2a3b4c5d"
)

// dogRepoWith returns a dog repository stub that knows exactly one dog ID.
func dogRepoWith(id string) *mockDogRepository {
	return &mockDogRepository{
		findByIDFunc: func(ctx context.Context, lookupID string) (*model.Dog, error) {
			if lookupID == id {
				return &model.Dog{ID: id}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

func validApplication() *model.AdoptionApplication {
	return &model.AdoptionApplication{
		DogID:   knownDogID,
		Name:    "A",
		Email:   "a@b.com",
		Phone:   "555-0100",
		Address: "1 Main St",
	}
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestAdoptionService_Submit_MissingFields(t *testing.T) {
	saves := 0
	repo := &mockAdoptionRepository{
		saveFunc: func(ctx context.Context, app *model.AdoptionApplication) error {
			saves++
			return nil
		},
	}
	svc := NewAdoptionService(repo, dogRepoWith(knownDogID))

	mutations := []func(*model.AdoptionApplication){
		func(a *model.AdoptionApplication) { a.DogID = "" },
		func(a *model.AdoptionApplication) { a.Name = "" },
		func(a *model.AdoptionApplication) { a.Email = "" },
		func(a *model.AdoptionApplication) { a.Phone = "" },
		func(a *model.AdoptionApplication) { a.Address = "" },
	}
	for _, mutate := range mutations {
		app := validApplication()
		mutate(app)
		err := svc.Submit(context.Background(), app)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Submit(%+v): expected ValidationError, got %v", app, err)
		}
	}
	if saves != 0 {
		t.Errorf("validation failure wrote %d records, want 0", saves)
	}
}

func TestAdoptionService_Submit_EnumFields(t *testing.T) {
	svc := NewAdoptionService(&mockAdoptionRepository{}, dogRepoWith(knownDogID))

	app := validApplication()
	app.HomeOwnership = "lease"
	if err := svc.Submit(context.Background(), app); err == nil {
		t.Error("invalid homeOwnership accepted")
	}

	app = validApplication()
	app.FencedYard = "maybe"
	if err := svc.Submit(context.Background(), app); err == nil {
		t.Error("invalid fencedYard accepted")
	}

	app = validApplication()
	app.HomeOwnership = model.OwnershipRent
	app.FencedYard = model.FencedYardNo
	if err := svc.Submit(context.Background(), app); err != nil {
		t.Errorf("valid enum values rejected: %v", err)
	}
}

func TestAdoptionService_Submit_UnknownDogRejected(t *testing.T) {
	saves := 0
	repo := &mockAdoptionRepository{
		saveFunc: func(ctx context.Context, app *model.AdoptionApplication) error {
			saves++
			return nil
		},
	}
	svc := NewAdoptionService(repo, dogRepoWith(knownDogID))

	app := validApplication()
	app.DogID = otherDogID
	if err := svc.Submit(context.Background(), app); !errors.Is(err, ErrUnknownDog) {
		t.Fatalf("expected ErrUnknownDog, got %v", err)
	}
	if saves != 0 {
		t.Errorf("orphan application wrote %d records, want 0", saves)
	}
}

func TestAdoptionService_Submit_MalformedDogIDRejected(t *testing.T) {
	lookups := 0
	saves := 0
	dogRepo := &mockDogRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Dog, error) {
			lookups++
			// A non-UUID id makes the real repository surface a database
			// cast error, which is neither ErrNotFound nor a validation
			// failure. The service must reject the shape before looking up.
			return nil, &pgconn.PgError{Code: "22P02"}
		},
	}
	repo := &mockAdoptionRepository{
		saveFunc: func(ctx context.Context, app *model.AdoptionApplication) error {
			saves++
			return nil
		},
	}
	svc := NewAdoptionService(repo, dogRepo)

	app := validApplication()
	app.DogID = "definitely-not-a-uuid"
	err := svc.Submit(context.Background(), app)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for malformed dogId, got %v", err)
	}
	if lookups != 0 {
		t.Errorf("malformed dogId reached the repository %d times, want 0", lookups)
	}
	if saves != 0 {
		t.Errorf("malformed dogId wrote %d records, want 0", saves)
	}
}

func TestAdoptionService_Submit_Success(t *testing.T) {
	var saved *model.AdoptionApplication
	repo := &mockAdoptionRepository{
		saveFunc: func(ctx context.Context, app *model.AdoptionApplication) error {
			saved = app
			return nil
		},
	}
	svc := NewAdoptionService(repo, dogRepoWith(knownDogID))

	app := validApplication()
	app.OtherPets = "one cat"
	app.Motivation = "always wanted a dog"
	if err := svc.Submit(context.Background(), app); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.OtherPets != "one cat" || saved.Motivation != "always wanted a dog" {
		t.Errorf("free-text fields modified: %+v", saved)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestAdoptionService_List(t *testing.T) {
	repo := &mockAdoptionRepository{
		listFunc: func(ctx context.Context) ([]*model.AdoptionApplication, error) {
			return []*model.AdoptionApplication{{ID: "a1"}}, nil
		},
	}
	svc := NewAdoptionService(repo, dogRepoWith(knownDogID))

	apps, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 1 {
		t.Errorf("expected 1 application, got %d", len(apps))
	}
}
