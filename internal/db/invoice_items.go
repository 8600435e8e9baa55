package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoiceItem = `
INSERT INTO invoice_items (invoice_id, item_type, service_id, product_id, item_name, item_description, unit_price, quantity, discount_percent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, invoice_id, item_type, service_id, product_id, item_name, item_description, unit_price, quantity, discount_percent, created_at, updated_at
`

type CreateInvoiceItemParams struct {
	InvoiceID       uuid.UUID
	ItemType        string
	ServiceID       pgtype.UUID
	ProductID       pgtype.UUID
	ItemName        string
	ItemDescription pgtype.Text
	UnitPrice       pgtype.Numeric
	Quantity        int32
	DiscountPercent pgtype.Numeric
}

func (q *Queries) CreateInvoiceItem(ctx context.Context, arg CreateInvoiceItemParams) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, createInvoiceItem,
		arg.InvoiceID, arg.ItemType, arg.ServiceID, arg.ProductID, arg.ItemName, arg.ItemDescription, arg.UnitPrice, arg.Quantity, arg.DiscountPercent)
	var i InvoiceItem
	err := row.Scan(&i.ID, &i.InvoiceID, &i.ItemType, &i.ServiceID, &i.ProductID, &i.ItemName, &i.ItemDescription, &i.UnitPrice, &i.Quantity, &i.DiscountPercent, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getInvoiceItem = `
SELECT id, invoice_id, item_type, service_id, product_id, item_name, item_description, unit_price, quantity, discount_percent, created_at, updated_at
FROM invoice_items WHERE id = $1
`

func (q *Queries) GetInvoiceItem(ctx context.Context, id uuid.UUID) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, getInvoiceItem, id)
	var i InvoiceItem
	err := row.Scan(&i.ID, &i.InvoiceID, &i.ItemType, &i.ServiceID, &i.ProductID, &i.ItemName, &i.ItemDescription, &i.UnitPrice, &i.Quantity, &i.DiscountPercent, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listInvoiceItems = `
SELECT id, invoice_id, item_type, service_id, product_id, item_name, item_description, unit_price, quantity, discount_percent, created_at, updated_at
FROM invoice_items
WHERE invoice_id = $1
ORDER BY created_at
`

// ListInvoiceItems returns an invoice's items in attachment order. The order
// does not affect totals but keeps display stable.
func (q *Queries) ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error) {
	rows, err := q.db.Query(ctx, listInvoiceItems, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceItem
	for rows.Next() {
		var i InvoiceItem
		if err := rows.Scan(&i.ID, &i.InvoiceID, &i.ItemType, &i.ServiceID, &i.ProductID, &i.ItemName, &i.ItemDescription, &i.UnitPrice, &i.Quantity, &i.DiscountPercent, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateInvoiceItem = `
UPDATE invoice_items SET
    quantity         = COALESCE($2, quantity),
    discount_percent = COALESCE($3, discount_percent),
    updated_at       = now()
WHERE id = $1
RETURNING id, invoice_id, item_type, service_id, product_id, item_name, item_description, unit_price, quantity, discount_percent, created_at, updated_at
`

type UpdateInvoiceItemParams struct {
	ID              uuid.UUID
	Quantity        pgtype.Int4
	DiscountPercent pgtype.Numeric
}

// UpdateInvoiceItem only allows quantity and discount edits; the price and
// name snapshot taken at attachment time is immutable.
func (q *Queries) UpdateInvoiceItem(ctx context.Context, arg UpdateInvoiceItemParams) (InvoiceItem, error) {
	row := q.db.QueryRow(ctx, updateInvoiceItem, arg.ID, arg.Quantity, arg.DiscountPercent)
	var i InvoiceItem
	err := row.Scan(&i.ID, &i.InvoiceID, &i.ItemType, &i.ServiceID, &i.ProductID, &i.ItemName, &i.ItemDescription, &i.UnitPrice, &i.Quantity, &i.DiscountPercent, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const deleteInvoiceItem = `
DELETE FROM invoice_items WHERE id = $1
`

func (q *Queries) DeleteInvoiceItem(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteInvoiceItem, id)
	return err
}
