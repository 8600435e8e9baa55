package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countAppointmentsByStatus = `
SELECT count(*) FROM appointments
WHERE active AND ($1::text = '' OR status = $1)
`

func (q *Queries) CountAppointmentsByStatus(ctx context.Context, status string) (int64, error) {
	row := q.db.QueryRow(ctx, countAppointmentsByStatus, status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listInvoiceLedgerRows = `
SELECT i.id, i.discount_percent, i.deposit,
       it.unit_price, it.quantity, it.discount_percent
FROM invoices i
LEFT JOIN invoice_items it ON it.invoice_id = i.id
WHERE i.active
ORDER BY i.id
`

// InvoiceLedgerRow is one invoice/item pair used to recompute ledgers in
// bulk. Item columns are NULL for invoices without items.
type InvoiceLedgerRow struct {
	InvoiceID           uuid.UUID
	DiscountPercent     pgtype.Numeric
	Deposit             pgtype.Numeric
	ItemUnitPrice       pgtype.Numeric
	ItemQuantity        pgtype.Int4
	ItemDiscountPercent pgtype.Numeric
}

func (q *Queries) ListInvoiceLedgerRows(ctx context.Context) ([]InvoiceLedgerRow, error) {
	rows, err := q.db.Query(ctx, listInvoiceLedgerRows)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InvoiceLedgerRow
	for rows.Next() {
		var i InvoiceLedgerRow
		if err := rows.Scan(&i.InvoiceID, &i.DiscountPercent, &i.Deposit, &i.ItemUnitPrice, &i.ItemQuantity, &i.ItemDiscountPercent); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
