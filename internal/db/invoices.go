package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoice = `
INSERT INTO invoices (invoice_number, client_id, pet_id, invoice_date, due_date, discount_percent, deposit, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, invoice_number, client_id, pet_id, invoice_date, due_date, discount_percent, deposit, notes, active, created_at, updated_at
`

type CreateInvoiceParams struct {
	InvoiceNumber   string
	ClientID        uuid.UUID
	PetID           pgtype.UUID
	InvoiceDate     time.Time
	DueDate         pgtype.Date
	DiscountPercent pgtype.Numeric
	Deposit         pgtype.Numeric
	Notes           pgtype.Text
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.InvoiceNumber, arg.ClientID, arg.PetID, arg.InvoiceDate, arg.DueDate, arg.DiscountPercent, arg.Deposit, arg.Notes)
	var i Invoice
	err := row.Scan(&i.ID, &i.InvoiceNumber, &i.ClientID, &i.PetID, &i.InvoiceDate, &i.DueDate, &i.DiscountPercent, &i.Deposit, &i.Notes, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getInvoice = `
SELECT id, invoice_number, client_id, pet_id, invoice_date, due_date, discount_percent, deposit, notes, active, created_at, updated_at
FROM invoices WHERE id = $1
`

func (q *Queries) GetInvoice(ctx context.Context, id uuid.UUID) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoice, id)
	var i Invoice
	err := row.Scan(&i.ID, &i.InvoiceNumber, &i.ClientID, &i.PetID, &i.InvoiceDate, &i.DueDate, &i.DiscountPercent, &i.Deposit, &i.Notes, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listInvoices = `
SELECT id, invoice_number, client_id, pet_id, invoice_date, due_date, discount_percent, deposit, notes, active, created_at, updated_at
FROM invoices
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR client_id = $2)
  AND ($3::text = '' OR invoice_number ILIKE '%' || $3 || '%')
ORDER BY created_at DESC
LIMIT $4 OFFSET $5
`

type ListInvoicesParams struct {
	IncludeInactive bool
	ClientID        pgtype.UUID
	Search          string
	Limit           int32
	Offset          int32
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices, arg.IncludeInactive, arg.ClientID, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		var i Invoice
		if err := rows.Scan(&i.ID, &i.InvoiceNumber, &i.ClientID, &i.PetID, &i.InvoiceDate, &i.DueDate, &i.DiscountPercent, &i.Deposit, &i.Notes, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listAllInvoices = `
SELECT id, invoice_number, client_id, pet_id, invoice_date, due_date, discount_percent, deposit, notes, active, created_at, updated_at
FROM invoices
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR client_id = $2)
  AND ($3::text = '' OR invoice_number ILIKE '%' || $3 || '%')
ORDER BY created_at DESC
`

type ListAllInvoicesParams struct {
	IncludeInactive bool
	ClientID        pgtype.UUID
	Search          string
}

// ListAllInvoices returns every matching invoice without pagination. Used
// when the caller filters on a derived value and must page afterwards.
func (q *Queries) ListAllInvoices(ctx context.Context, arg ListAllInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listAllInvoices, arg.IncludeInactive, arg.ClientID, arg.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Invoice
	for rows.Next() {
		var i Invoice
		if err := rows.Scan(&i.ID, &i.InvoiceNumber, &i.ClientID, &i.PetID, &i.InvoiceDate, &i.DueDate, &i.DiscountPercent, &i.Deposit, &i.Notes, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const countInvoices = `
SELECT count(*) FROM invoices
WHERE (active OR $1::bool)
  AND ($2::uuid IS NULL OR client_id = $2)
  AND ($3::text = '' OR invoice_number ILIKE '%' || $3 || '%')
`

type CountInvoicesParams struct {
	IncludeInactive bool
	ClientID        pgtype.UUID
	Search          string
}

func (q *Queries) CountInvoices(ctx context.Context, arg CountInvoicesParams) (int64, error) {
	row := q.db.QueryRow(ctx, countInvoices, arg.IncludeInactive, arg.ClientID, arg.Search)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countInvoicesWithPrefix = `
SELECT count(*) FROM invoices WHERE invoice_number LIKE $1 || '%'
`

// CountInvoicesWithPrefix supports sequential invoice number generation
// within a month (INV-YYYYMM-NNNN).
func (q *Queries) CountInvoicesWithPrefix(ctx context.Context, prefix string) (int64, error) {
	row := q.db.QueryRow(ctx, countInvoicesWithPrefix, prefix)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateInvoice = `
UPDATE invoices SET
    client_id        = COALESCE($2, client_id),
    pet_id           = COALESCE($3, pet_id),
    invoice_date     = COALESCE($4, invoice_date),
    due_date         = COALESCE($5, due_date),
    discount_percent = COALESCE($6, discount_percent),
    deposit          = COALESCE($7, deposit),
    notes            = COALESCE($8, notes),
    updated_at       = now()
WHERE id = $1
RETURNING id, invoice_number, client_id, pet_id, invoice_date, due_date, discount_percent, deposit, notes, active, created_at, updated_at
`

type UpdateInvoiceParams struct {
	ID              uuid.UUID
	ClientID        pgtype.UUID
	PetID           pgtype.UUID
	InvoiceDate     pgtype.Date
	DueDate         pgtype.Date
	DiscountPercent pgtype.Numeric
	Deposit         pgtype.Numeric
	Notes           pgtype.Text
}

func (q *Queries) UpdateInvoice(ctx context.Context, arg UpdateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, updateInvoice,
		arg.ID, arg.ClientID, arg.PetID, arg.InvoiceDate, arg.DueDate, arg.DiscountPercent, arg.Deposit, arg.Notes)
	var i Invoice
	err := row.Scan(&i.ID, &i.InvoiceNumber, &i.ClientID, &i.PetID, &i.InvoiceDate, &i.DueDate, &i.DiscountPercent, &i.Deposit, &i.Notes, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setInvoiceActive = `
UPDATE invoices SET active = $2, updated_at = now() WHERE id = $1
`

type SetInvoiceActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetInvoiceActive(ctx context.Context, arg SetInvoiceActiveParams) error {
	_, err := q.db.Exec(ctx, setInvoiceActive, arg.ID, arg.Active)
	return err
}
