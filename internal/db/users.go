package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createUser = `
INSERT INTO users (first_name, last_name, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, first_name, last_name, email, password_hash, role, active, created_at, updated_at
`

type CreateUserParams struct {
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser, arg.FirstName, arg.LastName, arg.Email, arg.PasswordHash, arg.Role)
	var i User
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.PasswordHash, &i.Role, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getUser = `
SELECT id, first_name, last_name, email, password_hash, role, active, created_at, updated_at
FROM users WHERE id = $1
`

func (q *Queries) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRow(ctx, getUser, id)
	var i User
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.PasswordHash, &i.Role, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getUserByEmail = `
SELECT id, first_name, last_name, email, password_hash, role, active, created_at, updated_at
FROM users WHERE lower(email) = lower($1)
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.PasswordHash, &i.Role, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listUsers = `
SELECT id, first_name, last_name, email, password_hash, role, active, created_at, updated_at
FROM users
WHERE active OR $1::bool
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListUsersParams struct {
	IncludeInactive bool
	Limit           int32
	Offset          int32
}

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error) {
	rows, err := q.db.Query(ctx, listUsers, arg.IncludeInactive, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var i User
		if err := rows.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.PasswordHash, &i.Role, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateUser = `
UPDATE users SET
    first_name = COALESCE($2, first_name),
    last_name  = COALESCE($3, last_name),
    email      = COALESCE($4, email),
    role       = COALESCE($5, role),
    updated_at = now()
WHERE id = $1
RETURNING id, first_name, last_name, email, password_hash, role, active, created_at, updated_at
`

type UpdateUserParams struct {
	ID        uuid.UUID
	FirstName pgtype.Text
	LastName  pgtype.Text
	Email     pgtype.Text
	Role      pgtype.Text
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, updateUser, arg.ID, arg.FirstName, arg.LastName, arg.Email, arg.Role)
	var i User
	err := row.Scan(&i.ID, &i.FirstName, &i.LastName, &i.Email, &i.PasswordHash, &i.Role, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const updateUserPassword = `
UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1
`

type UpdateUserPasswordParams struct {
	ID           uuid.UUID
	PasswordHash string
}

func (q *Queries) UpdateUserPassword(ctx context.Context, arg UpdateUserPasswordParams) error {
	_, err := q.db.Exec(ctx, updateUserPassword, arg.ID, arg.PasswordHash)
	return err
}

const setUserActive = `
UPDATE users SET active = $2, updated_at = now() WHERE id = $1
`

type SetUserActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetUserActive(ctx context.Context, arg SetUserActiveParams) error {
	_, err := q.db.Exec(ctx, setUserActive, arg.ID, arg.Active)
	return err
}
