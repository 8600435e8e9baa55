package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createClient = `
INSERT INTO clients (name, gender, phone_number, other_contact_info)
VALUES ($1, $2, $3, $4)
RETURNING id, name, gender, phone_number, other_contact_info, active, created_at, updated_at
`

type CreateClientParams struct {
	Name             string
	Gender           string
	PhoneNumber      string
	OtherContactInfo pgtype.Text
}

func (q *Queries) CreateClient(ctx context.Context, arg CreateClientParams) (Client, error) {
	row := q.db.QueryRow(ctx, createClient, arg.Name, arg.Gender, arg.PhoneNumber, arg.OtherContactInfo)
	var i Client
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.PhoneNumber, &i.OtherContactInfo, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getClient = `
SELECT id, name, gender, phone_number, other_contact_info, active, created_at, updated_at
FROM clients WHERE id = $1
`

func (q *Queries) GetClient(ctx context.Context, id uuid.UUID) (Client, error) {
	row := q.db.QueryRow(ctx, getClient, id)
	var i Client
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.PhoneNumber, &i.OtherContactInfo, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getClientByPhone = `
SELECT id, name, gender, phone_number, other_contact_info, active, created_at, updated_at
FROM clients WHERE phone_number = $1
`

func (q *Queries) GetClientByPhone(ctx context.Context, phoneNumber string) (Client, error) {
	row := q.db.QueryRow(ctx, getClientByPhone, phoneNumber)
	var i Client
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.PhoneNumber, &i.OtherContactInfo, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listClients = `
SELECT id, name, gender, phone_number, other_contact_info, active, created_at, updated_at
FROM clients
WHERE (active OR $1::bool)
  AND ($2::text = '' OR name ILIKE '%' || $2 || '%' OR phone_number ILIKE '%' || $2 || '%')
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

type ListClientsParams struct {
	IncludeInactive bool
	Search          string
	Limit           int32
	Offset          int32
}

func (q *Queries) ListClients(ctx context.Context, arg ListClientsParams) ([]Client, error) {
	rows, err := q.db.Query(ctx, listClients, arg.IncludeInactive, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Client
	for rows.Next() {
		var i Client
		if err := rows.Scan(&i.ID, &i.Name, &i.Gender, &i.PhoneNumber, &i.OtherContactInfo, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countClients = `
SELECT count(*) FROM clients
WHERE (active OR $1::bool)
  AND ($2::text = '' OR name ILIKE '%' || $2 || '%' OR phone_number ILIKE '%' || $2 || '%')
`

type CountClientsParams struct {
	IncludeInactive bool
	Search          string
}

func (q *Queries) CountClients(ctx context.Context, arg CountClientsParams) (int64, error) {
	row := q.db.QueryRow(ctx, countClients, arg.IncludeInactive, arg.Search)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateClient = `
UPDATE clients SET
    name               = COALESCE($2, name),
    gender             = COALESCE($3, gender),
    phone_number       = COALESCE($4, phone_number),
    other_contact_info = COALESCE($5, other_contact_info),
    updated_at         = now()
WHERE id = $1
RETURNING id, name, gender, phone_number, other_contact_info, active, created_at, updated_at
`

type UpdateClientParams struct {
	ID               uuid.UUID
	Name             pgtype.Text
	Gender           pgtype.Text
	PhoneNumber      pgtype.Text
	OtherContactInfo pgtype.Text
}

func (q *Queries) UpdateClient(ctx context.Context, arg UpdateClientParams) (Client, error) {
	row := q.db.QueryRow(ctx, updateClient, arg.ID, arg.Name, arg.Gender, arg.PhoneNumber, arg.OtherContactInfo)
	var i Client
	err := row.Scan(&i.ID, &i.Name, &i.Gender, &i.PhoneNumber, &i.OtherContactInfo, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setClientActive = `
UPDATE clients SET active = $2, updated_at = now() WHERE id = $1
`

type SetClientActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetClientActive(ctx context.Context, arg SetClientActiveParams) error {
	_, err := q.db.Exec(ctx, setClientActive, arg.ID, arg.Active)
	return err
}
