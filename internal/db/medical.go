package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createAllergy = `
INSERT INTO allergies (name, description)
VALUES ($1, $2)
RETURNING id, name, description, active, created_at, updated_at
`

type CreateAllergyParams struct {
	Name        string
	Description pgtype.Text
}

func (q *Queries) CreateAllergy(ctx context.Context, arg CreateAllergyParams) (Allergy, error) {
	row := q.db.QueryRow(ctx, createAllergy, arg.Name, arg.Description)
	var i Allergy
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getAllergy = `
SELECT id, name, description, active, created_at, updated_at FROM allergies WHERE id = $1
`

func (q *Queries) GetAllergy(ctx context.Context, id uuid.UUID) (Allergy, error) {
	row := q.db.QueryRow(ctx, getAllergy, id)
	var i Allergy
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listAllergies = `
SELECT id, name, description, active, created_at, updated_at
FROM allergies
WHERE active OR $1::bool
ORDER BY name
`

func (q *Queries) ListAllergies(ctx context.Context, includeInactive bool) ([]Allergy, error) {
	rows, err := q.db.Query(ctx, listAllergies, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Allergy
	for rows.Next() {
		var i Allergy
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateAllergy = `
UPDATE allergies SET
    name        = COALESCE($2, name),
    description = COALESCE($3, description),
    updated_at  = now()
WHERE id = $1
RETURNING id, name, description, active, created_at, updated_at
`

type UpdateAllergyParams struct {
	ID          uuid.UUID
	Name        pgtype.Text
	Description pgtype.Text
}

func (q *Queries) UpdateAllergy(ctx context.Context, arg UpdateAllergyParams) (Allergy, error) {
	row := q.db.QueryRow(ctx, updateAllergy, arg.ID, arg.Name, arg.Description)
	var i Allergy
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setAllergyActive = `
UPDATE allergies SET active = $2, updated_at = now() WHERE id = $1
`

type SetAllergyActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetAllergyActive(ctx context.Context, arg SetAllergyActiveParams) error {
	_, err := q.db.Exec(ctx, setAllergyActive, arg.ID, arg.Active)
	return err
}

const createVaccination = `
INSERT INTO vaccinations (name, description, duration_months)
VALUES ($1, $2, $3)
RETURNING id, name, description, duration_months, active, created_at, updated_at
`

type CreateVaccinationParams struct {
	Name           string
	Description    pgtype.Text
	DurationMonths int32
}

func (q *Queries) CreateVaccination(ctx context.Context, arg CreateVaccinationParams) (Vaccination, error) {
	row := q.db.QueryRow(ctx, createVaccination, arg.Name, arg.Description, arg.DurationMonths)
	var i Vaccination
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.DurationMonths, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getVaccination = `
SELECT id, name, description, duration_months, active, created_at, updated_at
FROM vaccinations WHERE id = $1
`

func (q *Queries) GetVaccination(ctx context.Context, id uuid.UUID) (Vaccination, error) {
	row := q.db.QueryRow(ctx, getVaccination, id)
	var i Vaccination
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.DurationMonths, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listVaccinations = `
SELECT id, name, description, duration_months, active, created_at, updated_at
FROM vaccinations
WHERE active OR $1::bool
ORDER BY name
`

func (q *Queries) ListVaccinations(ctx context.Context, includeInactive bool) ([]Vaccination, error) {
	rows, err := q.db.Query(ctx, listVaccinations, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Vaccination
	for rows.Next() {
		var i Vaccination
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.DurationMonths, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateVaccination = `
UPDATE vaccinations SET
    name            = COALESCE($2, name),
    description     = COALESCE($3, description),
    duration_months = COALESCE($4, duration_months),
    updated_at      = now()
WHERE id = $1
RETURNING id, name, description, duration_months, active, created_at, updated_at
`

type UpdateVaccinationParams struct {
	ID             uuid.UUID
	Name           pgtype.Text
	Description    pgtype.Text
	DurationMonths pgtype.Int4
}

func (q *Queries) UpdateVaccination(ctx context.Context, arg UpdateVaccinationParams) (Vaccination, error) {
	row := q.db.QueryRow(ctx, updateVaccination, arg.ID, arg.Name, arg.Description, arg.DurationMonths)
	var i Vaccination
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.DurationMonths, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setVaccinationActive = `
UPDATE vaccinations SET active = $2, updated_at = now() WHERE id = $1
`

type SetVaccinationActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetVaccinationActive(ctx context.Context, arg SetVaccinationActiveParams) error {
	_, err := q.db.Exec(ctx, setVaccinationActive, arg.ID, arg.Active)
	return err
}
