package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createService = `
INSERT INTO services (name, description, price, duration_minutes)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, price, duration_minutes, active, created_at, updated_at
`

type CreateServiceParams struct {
	Name            string
	Description     pgtype.Text
	Price           pgtype.Numeric
	DurationMinutes int32
}

func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) (Service, error) {
	row := q.db.QueryRow(ctx, createService, arg.Name, arg.Description, arg.Price, arg.DurationMinutes)
	var i Service
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.DurationMinutes, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getService = `
SELECT id, name, description, price, duration_minutes, active, created_at, updated_at
FROM services WHERE id = $1
`

func (q *Queries) GetService(ctx context.Context, id uuid.UUID) (Service, error) {
	row := q.db.QueryRow(ctx, getService, id)
	var i Service
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.DurationMinutes, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listServices = `
SELECT id, name, description, price, duration_minutes, active, created_at, updated_at
FROM services
WHERE (active OR $1::bool)
  AND ($2::text = '' OR name ILIKE '%' || $2 || '%')
ORDER BY name
LIMIT $3 OFFSET $4
`

type ListServicesParams struct {
	IncludeInactive bool
	Search          string
	Limit           int32
	Offset          int32
}

func (q *Queries) ListServices(ctx context.Context, arg ListServicesParams) ([]Service, error) {
	rows, err := q.db.Query(ctx, listServices, arg.IncludeInactive, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Service
	for rows.Next() {
		var i Service
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.DurationMinutes, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateService = `
UPDATE services SET
    name             = COALESCE($2, name),
    description      = COALESCE($3, description),
    price            = COALESCE($4, price),
    duration_minutes = COALESCE($5, duration_minutes),
    updated_at       = now()
WHERE id = $1
RETURNING id, name, description, price, duration_minutes, active, created_at, updated_at
`

type UpdateServiceParams struct {
	ID              uuid.UUID
	Name            pgtype.Text
	Description     pgtype.Text
	Price           pgtype.Numeric
	DurationMinutes pgtype.Int4
}

func (q *Queries) UpdateService(ctx context.Context, arg UpdateServiceParams) (Service, error) {
	row := q.db.QueryRow(ctx, updateService, arg.ID, arg.Name, arg.Description, arg.Price, arg.DurationMinutes)
	var i Service
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.DurationMinutes, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setServiceActive = `
UPDATE services SET active = $2, updated_at = now() WHERE id = $1
`

type SetServiceActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetServiceActive(ctx context.Context, arg SetServiceActiveParams) error {
	_, err := q.db.Exec(ctx, setServiceActive, arg.ID, arg.Active)
	return err
}

const createProduct = `
INSERT INTO products (name, description, price, stock_quantity, sku)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, description, price, stock_quantity, sku, active, created_at, updated_at
`

type CreateProductParams struct {
	Name          string
	Description   pgtype.Text
	Price         pgtype.Numeric
	StockQuantity int32
	Sku           pgtype.Text
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct, arg.Name, arg.Description, arg.Price, arg.StockQuantity, arg.Sku)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.StockQuantity, &i.Sku, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const getProduct = `
SELECT id, name, description, price, stock_quantity, sku, active, created_at, updated_at
FROM products WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.StockQuantity, &i.Sku, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const listProducts = `
SELECT id, name, description, price, stock_quantity, sku, active, created_at, updated_at
FROM products
WHERE (active OR $1::bool)
  AND ($2::text = '' OR name ILIKE '%' || $2 || '%' OR sku ILIKE '%' || $2 || '%')
ORDER BY name
LIMIT $3 OFFSET $4
`

type ListProductsParams struct {
	IncludeInactive bool
	Search          string
	Limit           int32
	Offset          int32
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts, arg.IncludeInactive, arg.Search, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var i Product
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.StockQuantity, &i.Sku, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listLowStockProducts = `
SELECT id, name, description, price, stock_quantity, sku, active, created_at, updated_at
FROM products
WHERE active AND stock_quantity <= $1
ORDER BY stock_quantity
`

func (q *Queries) ListLowStockProducts(ctx context.Context, threshold int32) ([]Product, error) {
	rows, err := q.db.Query(ctx, listLowStockProducts, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var i Product
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.StockQuantity, &i.Sku, &i.Active, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const updateProduct = `
UPDATE products SET
    name           = COALESCE($2, name),
    description    = COALESCE($3, description),
    price          = COALESCE($4, price),
    stock_quantity = COALESCE($5, stock_quantity),
    sku            = COALESCE($6, sku),
    updated_at     = now()
WHERE id = $1
RETURNING id, name, description, price, stock_quantity, sku, active, created_at, updated_at
`

type UpdateProductParams struct {
	ID            uuid.UUID
	Name          pgtype.Text
	Description   pgtype.Text
	Price         pgtype.Numeric
	StockQuantity pgtype.Int4
	Sku           pgtype.Text
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct, arg.ID, arg.Name, arg.Description, arg.Price, arg.StockQuantity, arg.Sku)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.StockQuantity, &i.Sku, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const adjustProductStock = `
UPDATE products SET
    stock_quantity = greatest(stock_quantity + $2, 0),
    updated_at     = now()
WHERE id = $1
RETURNING id, name, description, price, stock_quantity, sku, active, created_at, updated_at
`

type AdjustProductStockParams struct {
	ID    uuid.UUID
	Delta int32
}

// AdjustProductStock applies a relative stock change, clamped at zero.
func (q *Queries) AdjustProductStock(ctx context.Context, arg AdjustProductStockParams) (Product, error) {
	row := q.db.QueryRow(ctx, adjustProductStock, arg.ID, arg.Delta)
	var i Product
	err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Price, &i.StockQuantity, &i.Sku, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

const setProductActive = `
UPDATE products SET active = $2, updated_at = now() WHERE id = $1
`

type SetProductActiveParams struct {
	ID     uuid.UUID
	Active bool
}

func (q *Queries) SetProductActive(ctx context.Context, arg SetProductActiveParams) error {
	_, err := q.db.Exec(ctx, setProductActive, arg.ID, arg.Active)
	return err
}
