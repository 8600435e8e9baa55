package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPet = `
INSERT INTO pets (name, gender, dob, species_id, breed_id, client_id, weight, color, medical_history)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, name, gender, dob, species_id, breed_id, client_id, weight, color, medical_history, active, created_at, updated_at
`

type CreatePetParams struct {
	Name           string
	Gender         string
	Dob            time.Time
	SpeciesID      uuid.UUID
	BreedID        uuid.UUID
	ClientID       uuid.UUID
	Weight         pgtype.Numeric
	Color          string
	MedicalHistory pgtype.Text
}

func (q *Queries) CreatePet(ctx context.Context, arg CreatePetParams) (Pet, error) {
	row := q.db.QueryRow(ctx, createPet,
		arg.Name, arg.Gender, arg.Dob, arg.SpeciesID, arg.BreedID, arg.ClientID, arg.Weight, arg.Color, arg.MedicalHistory)
	var i Pet
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.Dob, &i.SpeciesID, &i.BreedID, &i.ClientID, &i.Weight, &i.Color, &i.MedicalHistory, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getPet = `
SELECT id, name, gender, dob, species_id, breed_id, client_id, weight, color, medical_history, active, created_at, updated_at
FROM pets WHERE id = $1
`

func (q *Queries) GetPet(ctx context.Context, id uuid.UUID) (Pet, error) {
	row := q.db.QueryRow(ctx, getPet, id)
	var i Pet
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.Dob, &i.SpeciesID, &i.BreedID, &i.ClientID, &i.Weight, &i.Color, &i.MedicalHistory, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listPets = `
SELECT id, name, gender, dob, species_id, breed_id, client_id, weight, color, medical_history, active, created_at, updated_at
FROM pets
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR client_id = $2)
  AND ($3::text = '' OR name ILIKE '%' || $3 || '%')
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

type ListPetsParams struct {
	IncludeInactive bool
	ClientID        pgtype.UUID
	Search          string
	Limit           int32
	Offset          int32
}

func (q *Queries) ListPets(ctx context.Context, arg ListPetsParams) ([]Pet, error) {
	rows, err := q.db.Query(ctx, listPets, arg.IncludeInactive, arg.ClientID, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Pet
	for rows.Next() {
		var i Pet
		if err := rows.Scan(&i.ID, &i.Name, &i.Gender, &i.Dob, &i.SpeciesID, &i.BreedID, &i.ClientID, &i.Weight, &i.Color, &i.MedicalHistory, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countPets = `
SELECT count(*) FROM pets
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR client_id = $2)
  AND ($3::text = '' OR name ILIKE '%' || $3 || '%')
`

type CountPetsParams struct {
	IncludeInactive bool
	ClientID        pgtype.UUID
	Search          string
}

func (q *Queries) CountPets(ctx context.Context, arg CountPetsParams) (int64, error) {
	row := q.db.QueryRow(ctx, countPets, arg.IncludeInactive, arg.ClientID, arg.Search)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updatePet = `
UPDATE pets SET
    name            = COALESCE($2, name),
    gender          = COALESCE($3, gender),
    dob             = COALESCE($4, dob),
    species_id      = COALESCE($5, species_id),
    breed_id        = COALESCE($6, breed_id),
    client_id       = COALESCE($7, client_id),
    weight          = COALESCE($8, weight),
    color           = COALESCE($9, color),
    medical_history = COALESCE($10, medical_history),
    updated_at      = now()
WHERE id = $1
RETURNING id, name, gender, dob, species_id, breed_id, client_id, weight, color, medical_history, active, created_at, updated_at
`

type UpdatePetParams struct {
	ID             uuid.UUID
	Name           pgtype.Text
	Gender         pgtype.Text
	Dob            pgtype.Date
	SpeciesID      pgtype.UUID
	BreedID        pgtype.UUID
	ClientID       pgtype.UUID
	Weight         pgtype.Numeric
	Color          pgtype.Text
	MedicalHistory pgtype.Text
}

func (q *Queries) UpdatePet(ctx context.Context, arg UpdatePetParams) (Pet, error) {
	row := q.db.QueryRow(ctx, updatePet,
		arg.ID, arg.Name, arg.Gender, arg.Dob, arg.SpeciesID, arg.BreedID, arg.ClientID, arg.Weight, arg.Color, arg.MedicalHistory)
	var i Pet
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.Dob, &i.SpeciesID, &i.BreedID, &i.ClientID, &i.Weight, &i.Color, &i.MedicalHistory, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setPetActive = `
UPDATE pets SET active = $2, updated_at = now() WHERE id = $1
`

type SetPetActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetPetActive(ctx context.Context, arg SetPetActiveParams) error {
	_, err := q.db.Exec(ctx, setPetActive, arg.ID, arg.Active)
	return err
}
