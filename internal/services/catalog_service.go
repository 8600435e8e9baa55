package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrServiceNotFound is returned when the requested service does not exist
	ErrServiceNotFound = errors.New("service not found")
	// ErrProductNotFound is returned when the requested product does not exist
	ErrProductNotFound = errors.New("product not found")
)

// CatalogService manages the billable catalog: clinic services and stocked
// products. Invoice lines snapshot from here at attachment time, so price
// edits only affect future invoices.
type CatalogService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(queries db.Querier) *CatalogService {
	return &CatalogService{queries: queries, logger: logger.Log}
}

// CreateServiceParams contains parameters for creating a clinic service
type CreateServiceParams struct {
	Name            string
	Description     *string
	Price           decimal.Decimal
	DurationMinutes int32
}

// CreateService adds a billable clinic service.
func (s *CatalogService) CreateService(ctx context.Context, params CreateServiceParams) (*db.Service, error) {
	if params.Name == "" {
		return nil, errors.New("name is required")
	}
	if params.Price.IsNegative() {
		return nil, fmt.Errorf("price %s: %w", params.Price, ErrInvalidLedgerInput)
	}
	if params.DurationMinutes < 1 {
		return nil, errors.New("duration must be at least one minute")
	}

	service, err := s.queries.CreateService(ctx, db.CreateServiceParams{
		Name:            params.Name,
		Description:     helpers.TextFromPtr(params.Description),
		Price:           helpers.DecimalToNumeric(params.Price),
		DurationMinutes: params.DurationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	s.logger.Info("Service created", zap.String("service_id", service.ID.String()))
	return &service, nil
}

// GetService returns a single clinic service.
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*db.Service, error) {
	service, err := s.queries.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

// ListServices returns clinic services matched by name.
func (s *CatalogService) ListServices(ctx context.Context, includeInactive bool, search string) ([]db.Service, error) {
	services, err := s.queries.ListServices(ctx, db.ListServicesParams{
		IncludeInactive: includeInactive,
		Search:          search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// UpdateServiceParams contains the editable fields of a clinic service.
type UpdateServiceParams struct {
	ID              uuid.UUID
	Name            *string
	Description     *string
	Price           *decimal.Decimal
	DurationMinutes *int32
}

// UpdateService applies a partial update. Existing invoice lines keep their
// snapshot price.
func (s *CatalogService) UpdateService(ctx context.Context, params UpdateServiceParams) (*db.Service, error) {
	if params.Price != nil && params.Price.IsNegative() {
		return nil, fmt.Errorf("price %s: %w", params.Price, ErrInvalidLedgerInput)
	}
	if params.DurationMinutes != nil && *params.DurationMinutes < 1 {
		return nil, errors.New("duration must be at least one minute")
	}

	arg := db.UpdateServiceParams{
		ID:              params.ID,
		Name:            helpers.TextFromPtr(params.Name),
		Description:     helpers.TextFromPtr(params.Description),
		DurationMinutes: helpers.Int4FromPtr(params.DurationMinutes),
	}
	if params.Price != nil {
		arg.Price = helpers.DecimalToNumeric(*params.Price)
	}

	service, err := s.queries.UpdateService(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &service, nil
}

// SetServiceActive soft-deletes or restores a clinic service.
func (s *CatalogService) SetServiceActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetServiceActive(ctx, db.SetServiceActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set service active: %w", err)
	}
	return nil
}

// CreateProductParams contains parameters for creating a product
type CreateProductParams struct {
	Name          string
	Description   *string
	Price         decimal.Decimal
	StockQuantity int32
	Sku           *string
}

// CreateProduct adds a stocked product.
func (s *CatalogService) CreateProduct(ctx context.Context, params CreateProductParams) (*db.Product, error) {
	if params.Name == "" {
		return nil, errors.New("name is required")
	}
	if params.Price.IsNegative() {
		return nil, fmt.Errorf("price %s: %w", params.Price, ErrInvalidLedgerInput)
	}
	if params.StockQuantity < 0 {
		return nil, errors.New("stock quantity cannot be negative")
	}

	product, err := s.queries.CreateProduct(ctx, db.CreateProductParams{
		Name:          params.Name,
		Description:   helpers.TextFromPtr(params.Description),
		Price:         helpers.DecimalToNumeric(params.Price),
		StockQuantity: params.StockQuantity,
		Sku:           helpers.TextFromPtr(params.Sku),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("Product created", zap.String("product_id", product.ID.String()))
	return &product, nil
}

// GetProduct returns a single product.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*db.Product, error) {
	product, err := s.queries.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// ListProducts returns products matched by name or SKU.
func (s *CatalogService) ListProducts(ctx context.Context, includeInactive bool, search string) ([]db.Product, error) {
	products, err := s.queries.ListProducts(ctx, db.ListProductsParams{
		IncludeInactive: includeInactive,
		Search:          search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListLowStockProducts returns active products at or below the threshold,
// for the reorder report.
func (s *CatalogService) ListLowStockProducts(ctx context.Context, threshold int32) ([]db.Product, error) {
	if threshold < 0 {
		threshold = 0
	}
	products, err := s.queries.ListLowStockProducts(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	return products, nil
}

// UpdateProductParams contains the editable fields of a product.
type UpdateProductParams struct {
	ID            uuid.UUID
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int32
	Sku           *string
}

// UpdateProduct applies a partial update. StockQuantity here is an absolute
// restock value; paid invoices adjust stock relatively.
func (s *CatalogService) UpdateProduct(ctx context.Context, params UpdateProductParams) (*db.Product, error) {
	if params.Price != nil && params.Price.IsNegative() {
		return nil, fmt.Errorf("price %s: %w", params.Price, ErrInvalidLedgerInput)
	}
	if params.StockQuantity != nil && *params.StockQuantity < 0 {
		return nil, errors.New("stock quantity cannot be negative")
	}

	arg := db.UpdateProductParams{
		ID:            params.ID,
		Name:          helpers.TextFromPtr(params.Name),
		Description:   helpers.TextFromPtr(params.Description),
		StockQuantity: helpers.Int4FromPtr(params.StockQuantity),
		Sku:           helpers.TextFromPtr(params.Sku),
	}
	if params.Price != nil {
		arg.Price = helpers.DecimalToNumeric(*params.Price)
	}

	product, err := s.queries.UpdateProduct(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

// AdjustProductStock applies a relative stock change (restock or manual
// correction). The stored quantity never goes below zero.
func (s *CatalogService) AdjustProductStock(ctx context.Context, id uuid.UUID, delta int32) (*db.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}

	product, err := s.queries.AdjustProductStock(ctx, db.AdjustProductStockParams{ID: id, Delta: delta})
	if err != nil {
		return nil, fmt.Errorf("failed to adjust product stock: %w", err)
	}

	s.logger.Info("Product stock adjusted",
		zap.String("product_id", id.String()),
		zap.Int32("delta", delta),
		zap.Int32("stock_quantity", product.StockQuantity),
	)
	return &product, nil
}

// SetProductActive soft-deletes or restores a product.
func (s *CatalogService) SetProductActive(ctx context.Context, id uuid.UUID, active bool) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetProductActive(ctx, db.SetProductActiveParams{ID: id, Active: active}); err != nil {
		return fmt.Errorf("failed to set product active: %w", err)
	}
	return nil
}
