package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fourpaws/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DogRepository defines the persistence interface for dog listings.
type DogRepository interface {
	Create(ctx context.Context, dog *model.Dog) error
	FindByID(ctx context.Context, id string) (*model.Dog, error)
	List(ctx context.Context) ([]*model.Dog, error)
	Update(ctx context.Context, id string, patch model.DogPatch) (*model.Dog, error)
	Delete(ctx context.Context, id string) error
}

// PgDogRepository is the PostgreSQL implementation of DogRepository.
// The nested story, gallery and adoption-process sections are stored as
// JSONB columns and encoded/decoded by pgx's JSON codec.
type PgDogRepository struct {
	pool *pgxpool.Pool
}

// NewPgDogRepository creates a PgDogRepository backed by the given pool.
func NewPgDogRepository(pool *pgxpool.Pool) *PgDogRepository {
	return &PgDogRepository{pool: pool}
}

// Ensure PgDogRepository implements DogRepository at compile time.
var _ DogRepository = (*PgDogRepository)(nil)

const dogSelectCols = `id, name, COALESCE(subheading, ''), photo_url, age, gender, breed, COALESCE(size, ''), story, gallery, adoption_process, created_at, updated_at`

func scanDog(scan func(...any) error) (*model.Dog, error) {
	var d model.Dog
	if err := scan(
		&d.ID, &d.Name, &d.Subheading, &d.PhotoURL, &d.Age, &d.Gender, &d.Breed, &d.Size,
		&d.Story, &d.Gallery, &d.AdoptionProcess, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts a new dogs row and populates dog.ID and timestamps from
// the RETURNING clause.
func (r *PgDogRepository) Create(ctx context.Context, dog *model.Dog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO dogs (name, subheading, photo_url, age, gender, breed, size, story, gallery, adoption_process)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)
		 RETURNING id, created_at, updated_at`,
		dog.Name, dog.Subheading, dog.PhotoURL, dog.Age, dog.Gender, dog.Breed, dog.Size,
		dog.Story, dog.Gallery, dog.AdoptionProcess,
	).Scan(&dog.ID, &dog.CreatedAt, &dog.UpdatedAt)
}

// FindByID returns the dog with the given ID, or ErrNotFound.
func (r *PgDogRepository) FindByID(ctx context.Context, id string) (*model.Dog, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+dogSelectCols+` FROM dogs WHERE id = $1`, id)
	return scanDog(row.Scan)
}

// List returns all dog listings, newest first.
func (r *PgDogRepository) List(ctx context.Context) ([]*model.Dog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+dogSelectCols+` FROM dogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dogs []*model.Dog
	for rows.Next() {
		d, err := scanDog(rows.Scan)
		if err != nil {
			return nil, err
		}
		dogs = append(dogs, d)
	}
	return dogs, rows.Err()
}

// Update applies the non-nil fields of patch to the dog and returns the
// updated record, or ErrNotFound.
func (r *PgDogRepository) Update(ctx context.Context, id string, patch model.DogPatch) (*model.Dog, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Subheading != nil {
		add("subheading", *patch.Subheading)
	}
	if patch.PhotoURL != nil {
		add("photo_url", *patch.PhotoURL)
	}
	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.Gender != nil {
		add("gender", *patch.Gender)
	}
	if patch.Breed != nil {
		add("breed", *patch.Breed)
	}
	if patch.Size != nil {
		add("size", *patch.Size)
	}
	if patch.Story != nil {
		add("story", *patch.Story)
	}
	if patch.Gallery != nil {
		add("gallery", *patch.Gallery)
	}
	if patch.AdoptionProcess != nil {
		add("adoption_process", *patch.AdoptionProcess)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	row := r.pool.QueryRow(ctx,
		`UPDATE dogs SET `+strings.Join(sets, ", ")+
			fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args))+dogSelectCols,
		args...)
	return scanDog(row.Scan)
}

// Delete removes the dog with the given ID. Returns ErrNotFound if no row
// was deleted.
func (r *PgDogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
