package repository

import (
	"context"

	"github.com/fourpaws/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdoptionRepository defines the persistence interface for adoption
// applications. Applications are write-once from the public site; List
// exists for admin review.
type AdoptionRepository interface {
	Save(ctx context.Context, app *model.AdoptionApplication) error
	List(ctx context.Context) ([]*model.AdoptionApplication, error)
}

// PgAdoptionRepository is the PostgreSQL implementation of AdoptionRepository.
type PgAdoptionRepository struct {
	pool *pgxpool.Pool
}

// NewPgAdoptionRepository creates a PgAdoptionRepository backed by the given pool.
func NewPgAdoptionRepository(pool *pgxpool.Pool) *PgAdoptionRepository {
	return &PgAdoptionRepository{pool: pool}
}

// Ensure PgAdoptionRepository implements AdoptionRepository at compile time.
var _ AdoptionRepository = (*PgAdoptionRepository)(nil)

// Save inserts a new adoption_applications row and populates app.ID and
// app.CreatedAt from the RETURNING clause.
func (r *PgAdoptionRepository) Save(ctx context.Context, app *model.AdoptionApplication) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO adoption_applications
		   (dog_id, name, email, phone, address, home_ownership, fenced_yard, other_pets, environment, motivation)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))
		 RETURNING id, created_at`,
		app.DogID, app.Name, app.Email, app.Phone, app.Address,
		app.HomeOwnership, app.FencedYard, app.OtherPets, app.Environment, app.Motivation,
	).Scan(&app.ID, &app.CreatedAt)
}

// List returns all adoption applications, newest first.
func (r *PgAdoptionRepository) List(ctx context.Context) ([]*model.AdoptionApplication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, dog_id, name, email, phone, address,
		        COALESCE(home_ownership, ''), COALESCE(fenced_yard, ''),
		        COALESCE(other_pets, ''), COALESCE(environment, ''), COALESCE(motivation, ''),
		        created_at
		 FROM adoption_applications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*model.AdoptionApplication
	for rows.Next() {
		var a model.AdoptionApplication
		if err := rows.Scan(
			&a.ID, &a.DogID, &a.Name, &a.Email, &a.Phone, &a.Address,
			&a.HomeOwnership, &a.FencedYard, &a.OtherPets, &a.Environment, &a.Motivation,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}
