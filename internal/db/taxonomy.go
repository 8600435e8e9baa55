package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createSpecies = `
INSERT INTO species (name)
VALUES ($1)
RETURNING id, name, active, created_at, updated_at
`

func (q *Queries) CreateSpecies(ctx context.Context, name string) (Species, error) {
	row := q.db.QueryRow(ctx, createSpecies, name)
	var i Species
	err := row.Scan(&i.ID, &i.Name, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getSpecies = `
SELECT id, name, active, created_at, updated_at FROM species WHERE id = $1
`

func (q *Queries) GetSpecies(ctx context.Context, id uuid.UUID) (Species, error) {
	row := q.db.QueryRow(ctx, getSpecies, id)
	var i Species
	err := row.Scan(&i.ID, &i.Name, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listSpecies = `
SELECT id, name, active, created_at, updated_at
FROM species
WHERE active OR $1::bool
ORDER BY name
`

func (q *Queries) ListSpecies(ctx context.Context, includeInactive bool) ([]Species, error) {
	rows, err := q.db.Query(ctx, listSpecies, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Species
	for rows.Next() {
		var i Species
		if err := rows.Scan(&i.ID, &i.Name, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateSpecies = `
UPDATE species SET name = COALESCE($2, name), updated_at = now()
WHERE id = $1
RETURNING id, name, active, created_at, updated_at
`

type UpdateSpeciesParams struct {
	ID   uuid.UUID
	Name pgtype.Text
}

func (q *Queries) UpdateSpecies(ctx context.Context, arg UpdateSpeciesParams) (Species, error) {
	row := q.db.QueryRow(ctx, updateSpecies, arg.ID, arg.Name)
	var i Species
	err := row.Scan(&i.ID, &i.Name, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setSpeciesActive = `
UPDATE species SET active = $2, updated_at = now() WHERE id = $1
`

type SetSpeciesActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetSpeciesActive(ctx context.Context, arg SetSpeciesActiveParams) error {
	_, err := q.db.Exec(ctx, setSpeciesActive, arg.ID, arg.Active)
	return err
}

const createBreed = `
INSERT INTO breeds (name, species_id)
VALUES ($1, $2)
RETURNING id, name, species_id, active, created_at, updated_at
`

type CreateBreedParams struct {
	Name      string
	SpeciesID uuid.UUID
}

func (q *Queries) CreateBreed(ctx context.Context, arg CreateBreedParams) (Breed, error) {
	row := q.db.QueryRow(ctx, createBreed, arg.Name, arg.SpeciesID)
	var i Breed
	err := row.Scan(&i.ID, &i.Name, &i.SpeciesID, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getBreed = `
SELECT id, name, species_id, active, created_at, updated_at FROM breeds WHERE id = $1
`

func (q *Queries) GetBreed(ctx context.Context, id uuid.UUID) (Breed, error) {
	row := q.db.QueryRow(ctx, getBreed, id)
	var i Breed
	err := row.Scan(&i.ID, &i.Name, &i.SpeciesID, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listBreeds = `
SELECT id, name, species_id, active, created_at, updated_at
FROM breeds
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR species_id = $2)
ORDER BY name
`

type ListBreedsParams struct {
	IncludeInactive bool
	SpeciesID       pgtype.UUID
}

func (q *Queries) ListBreeds(ctx context.Context, arg ListBreedsParams) ([]Breed, error) {
	rows, err := q.db.Query(ctx, listBreeds, arg.IncludeInactive, arg.SpeciesID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Breed
	for rows.Next() {
		var i Breed
		if err := rows.Scan(&i.ID, &i.Name, &i.SpeciesID, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateBreed = `
UPDATE breeds SET
    name       = COALESCE($2, name),
    species_id = COALESCE($3, species_id),
    updated_at = now()
WHERE id = $1
RETURNING id, name, species_id, active, created_at, updated_at
`

type UpdateBreedParams struct {
	ID        uuid.UUID
	Name      pgtype.Text
	SpeciesID pgtype.UUID
}

func (q *Queries) UpdateBreed(ctx context.Context, arg UpdateBreedParams) (Breed, error) {
	row := q.db.QueryRow(ctx, updateBreed, arg.ID, arg.Name, arg.SpeciesID)
	var i Breed
	err := row.Scan(&i.ID, &i.Name, &i.SpeciesID, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setBreedActive = `
UPDATE breeds SET active = $2, updated_at = now() WHERE id = $1
`

type SetBreedActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetBreedActive(ctx context.Context, arg SetBreedActiveParams) error {
	_, err := q.db.Exec(ctx, setBreedActive, arg.ID, arg.Active)
	return err
}
