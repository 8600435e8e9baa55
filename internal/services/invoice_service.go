package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/constants"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrInvoiceNotFound is returned when the requested invoice does not exist
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvoiceItemNotFound is returned when the requested invoice item does not exist
	ErrInvoiceItemNotFound = errors.New("invoice item not found")
	// ErrCatalogItemInactive is returned when attaching a deactivated service or product
	ErrCatalogItemInactive = errors.New("catalog item is inactive")
	// ErrEmptyInvoice is returned when marking a zero-total invoice as paid
	ErrEmptyInvoice = errors.New("cannot mark an empty invoice as paid")
)

// InvoiceService handles business logic for invoices and their items. All
// financial figures are derived through the ledger calculator at read time;
// nothing derived is written back.
type InvoiceService struct {
	queries db.Querier
	logger  *zap.Logger
	calc    *LedgerCalculator
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(queries db.Querier) *InvoiceService {
	return &InvoiceService{
		queries: queries,
		logger:  logger.Log,
		calc:    NewLedgerCalculator(),
	}
}

// Calculator exposes the shared ledger calculator for presentation-layer
// line total rendering.
func (s *InvoiceService) Calculator() *LedgerCalculator {
	return s.calc
}

// InvoiceWithLedger pairs stored invoice data with its derived figures.
type InvoiceWithLedger struct {
	Invoice db.Invoice
	Items   []db.InvoiceItem
	Ledger  *Ledger
}

// CreateInvoiceParams contains parameters for creating an invoice
type CreateInvoiceParams struct {
	ClientID        uuid.UUID
	PetID           *uuid.UUID
	InvoiceDate     time.Time
	DueDate         *time.Time
	DiscountPercent decimal.Decimal
	Deposit         decimal.Decimal
	Notes           *string
}

// CreateInvoice creates an invoice with a generated sequential number. It
// starts with no items, so its status is Empty until lines are attached.
func (s *InvoiceService) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*InvoiceWithLedger, error) {
	if err := validatePercent(params.DiscountPercent); err != nil {
		return nil, err
	}
	if params.Deposit.IsNegative() {
		return nil, fmt.Errorf("deposit %s: %w", params.Deposit, ErrInvalidLedgerInput)
	}

	if _, err := s.queries.GetClient(ctx, params.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to verify client: %w", err)
	}

	number, err := s.GenerateInvoiceNumber(ctx, params.InvoiceDate)
	if err != nil {
		return nil, err
	}

	invoiceDate := params.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	dueDate := pgtype.Date{}
	if params.DueDate != nil {
		dueDate = pgtype.Date{Time: *params.DueDate, Valid: true}
	}

	invoice, err := s.queries.CreateInvoice(ctx, db.CreateInvoiceParams{
		InvoiceNumber:   number,
		ClientID:        params.ClientID,
		PetID:           helpers.UUIDFromPtr(params.PetID),
		InvoiceDate:     invoiceDate,
		DueDate:         dueDate,
		DiscountPercent: helpers.DecimalToNumeric(params.DiscountPercent),
		Deposit:         helpers.DecimalToNumeric(params.Deposit),
		Notes:           helpers.TextFromPtr(params.Notes),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.logger.Info("Invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("client_id", invoice.ClientID.String()),
	)

	return s.withLedger(ctx, invoice)
}

// GenerateInvoiceNumber produces the next INV-YYYYMM-NNNN number for the
// month of the given date.
func (s *InvoiceService) GenerateInvoiceNumber(ctx context.Context, date time.Time) (string, error) {
	if date.IsZero() {
		date = time.Now()
	}
	prefix := fmt.Sprintf("INV-%s-", date.Format("200601"))

	count, err := s.queries.CountInvoicesWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to count invoices for numbering: %w", err)
	}
	return fmt.Sprintf("%s%04d", prefix, count+1), nil
}

// GetInvoice returns an invoice with its items and derived ledger.
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceWithLedger, error) {
	invoice, err := s.queries.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}
	return s.withLedger(ctx, invoice)
}

// ListInvoicesParams contains parameters for listing invoices
type ListInvoicesParams struct {
	IncludeInactive bool
	ClientID        *uuid.UUID
	Search          string
	// Status filters by derived payment status after ledger computation;
	// empty string means no filter.
	Status PaymentStatus
	Limit  int32
	Offset int32
}

// ListInvoices returns a page of invoices, each with its derived ledger.
// Since status is never stored, a status filter computes the ledgers of every
// candidate row first, then paginates the filtered set, so pages stay full
// and the total reflects the filter.
func (s *InvoiceService) ListInvoices(ctx context.Context, params ListInvoicesParams) ([]*InvoiceWithLedger, int64, error) {
	if params.Status != "" {
		return s.listInvoicesByStatus(ctx, params)
	}

	invoices, err := s.queries.ListInvoices(ctx, db.ListInvoicesParams{
		IncludeInactive: params.IncludeInactive,
		ClientID:        helpers.UUIDFromPtr(params.ClientID),
		Search:          params.Search,
		Limit:           params.Limit,
		Offset:          params.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	total, err := s.queries.CountInvoices(ctx, db.CountInvoicesParams{
		IncludeInactive: params.IncludeInactive,
		ClientID:        helpers.UUIDFromPtr(params.ClientID),
		Search:          params.Search,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	results := make([]*InvoiceWithLedger, 0, len(invoices))
	for _, invoice := range invoices {
		withLedger, err := s.withLedger(ctx, invoice)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, withLedger)
	}
	return results, total, nil
}

func (s *InvoiceService) listInvoicesByStatus(ctx context.Context, params ListInvoicesParams) ([]*InvoiceWithLedger, int64, error) {
	invoices, err := s.queries.ListAllInvoices(ctx, db.ListAllInvoicesParams{
		IncludeInactive: params.IncludeInactive,
		ClientID:        helpers.UUIDFromPtr(params.ClientID),
		Search:          params.Search,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	matched := make([]*InvoiceWithLedger, 0, len(invoices))
	for _, invoice := range invoices {
		withLedger, err := s.withLedger(ctx, invoice)
		if err != nil {
			return nil, 0, err
		}
		if withLedger.Ledger.Status == params.Status {
			matched = append(matched, withLedger)
		}
	}

	total := int64(len(matched))
	start := int(params.Offset)
	if start > len(matched) {
		start = len(matched)
	}
	end := start + int(params.Limit)
	if params.Limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// UpdateInvoiceParams contains parameters for updating an invoice; nil
// fields are left unchanged.
type UpdateInvoiceParams struct {
	ID              uuid.UUID
	ClientID        *uuid.UUID
	PetID           *uuid.UUID
	InvoiceDate     *time.Time
	DueDate         *time.Time
	DiscountPercent *decimal.Decimal
	Deposit         *decimal.Decimal
	Notes           *string
}

// UpdateInvoice applies a partial update. A deposit or discount change that
// transitions the invoice into Paid triggers stock deduction for its product
// lines.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, params UpdateInvoiceParams) (*InvoiceWithLedger, error) {
	if params.DiscountPercent != nil {
		if err := validatePercent(*params.DiscountPercent); err != nil {
			return nil, err
		}
	}
	if params.Deposit != nil && params.Deposit.IsNegative() {
		return nil, fmt.Errorf("deposit %s: %w", params.Deposit, ErrInvalidLedgerInput)
	}

	before, err := s.GetInvoice(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	arg := db.UpdateInvoiceParams{
		ID:     params.ID,
		PetID:  helpers.UUIDFromPtr(params.PetID),
		Notes:  helpers.TextFromPtr(params.Notes),
	}
	if params.ClientID != nil {
		arg.ClientID = pgtype.UUID{Bytes: *params.ClientID, Valid: true}
	}
	if params.InvoiceDate != nil {
		arg.InvoiceDate = pgtype.Date{Time: *params.InvoiceDate, Valid: true}
	}
	if params.DueDate != nil {
		arg.DueDate = pgtype.Date{Time: *params.DueDate, Valid: true}
	}
	if params.DiscountPercent != nil {
		arg.DiscountPercent = helpers.DecimalToNumeric(*params.DiscountPercent)
	}
	if params.Deposit != nil {
		arg.Deposit = helpers.DecimalToNumeric(*params.Deposit)
	}

	invoice, err := s.queries.UpdateInvoice(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	after, err := s.withLedger(ctx, invoice)
	if err != nil {
		return nil, err
	}

	if err := s.settleStockOnPaid(ctx, before, after); err != nil {
		return nil, err
	}
	return after, nil
}

// MarkInvoicePaid sets the deposit to the invoice's current total, which by
// construction makes the balance due zero and the status Paid.
func (s *InvoiceService) MarkInvoicePaid(ctx context.Context, id uuid.UUID) (*InvoiceWithLedger, error) {
	before, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	if before.Ledger.Status == PaymentStatusEmpty {
		return nil, ErrEmptyInvoice
	}

	total := before.Ledger.Total
	after, err := s.UpdateInvoice(ctx, UpdateInvoiceParams{ID: id, Deposit: &total})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice marked as paid",
		zap.String("invoice_id", id.String()),
		zap.String("total", total.String()),
	)
	return after, nil
}

// DeleteInvoice soft-deletes an invoice. The record and its items remain and
// can be restored.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetInvoice(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetInvoiceActive(ctx, db.SetInvoiceActiveParams{ID: id, Active: false}); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	return nil
}

// RestoreInvoice reactivates a soft-deleted invoice.
func (s *InvoiceService) RestoreInvoice(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetInvoice(ctx, id); err != nil {
		return err
	}
	if err := s.queries.SetInvoiceActive(ctx, db.SetInvoiceActiveParams{ID: id, Active: true}); err != nil {
		return fmt.Errorf("failed to restore invoice: %w", err)
	}
	return nil
}

// AddInvoiceItemParams contains parameters for attaching a catalog entry to
// an invoice. Exactly one of ServiceID or ProductID must be set.
type AddInvoiceItemParams struct {
	InvoiceID       uuid.UUID
	ServiceID       *uuid.UUID
	ProductID       *uuid.UUID
	Quantity        int32
	DiscountPercent decimal.Decimal
}

// AddInvoiceItem snapshots the catalog entry's name, description and current
// price onto the invoice. Later catalog price edits do not touch the line.
func (s *InvoiceService) AddInvoiceItem(ctx context.Context, params AddInvoiceItemParams) (*InvoiceWithLedger, error) {
	if params.Quantity < 1 {
		return nil, fmt.Errorf("quantity %d: %w", params.Quantity, ErrInvalidLedgerInput)
	}
	if err := validatePercent(params.DiscountPercent); err != nil {
		return nil, err
	}
	if (params.ServiceID == nil) == (params.ProductID == nil) {
		return nil, errors.New("exactly one of service_id or product_id is required")
	}

	if _, err := s.GetInvoice(ctx, params.InvoiceID); err != nil {
		return nil, err
	}

	arg := db.CreateInvoiceItemParams{
		InvoiceID:       params.InvoiceID,
		Quantity:        params.Quantity,
		DiscountPercent: helpers.DecimalToNumeric(params.DiscountPercent),
	}

	switch {
	case params.ServiceID != nil:
		service, err := s.queries.GetService(ctx, *params.ServiceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("failed to get service: %w", err)
		}
		if !service.Active {
			return nil, ErrCatalogItemInactive
		}
		arg.ItemType = constants.ItemTypeService
		arg.ServiceID = pgtype.UUID{Bytes: service.ID, Valid: true}
		arg.ItemName = service.Name
		arg.ItemDescription = service.Description
		arg.UnitPrice = service.Price
	case params.ProductID != nil:
		product, err := s.queries.GetProduct(ctx, *params.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		if !product.Active {
			return nil, ErrCatalogItemInactive
		}
		arg.ItemType = constants.ItemTypeProduct
		arg.ProductID = pgtype.UUID{Bytes: product.ID, Valid: true}
		arg.ItemName = product.Name
		arg.ItemDescription = product.Description
		arg.UnitPrice = product.Price
	}

	item, err := s.queries.CreateInvoiceItem(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to add invoice item: %w", err)
	}

	s.logger.Info("Invoice item added",
		zap.String("invoice_id", params.InvoiceID.String()),
		zap.String("item_id", item.ID.String()),
		zap.String("item_type", item.ItemType),
	)

	return s.GetInvoice(ctx, params.InvoiceID)
}

// UpdateInvoiceItemParams contains the editable fields of an invoice line.
type UpdateInvoiceItemParams struct {
	ItemID          uuid.UUID
	Quantity        *int32
	DiscountPercent *decimal.Decimal
}

// UpdateInvoiceItem edits a line's quantity or discount. The snapshot fields
// stay frozen.
func (s *InvoiceService) UpdateInvoiceItem(ctx context.Context, params UpdateInvoiceItemParams) (*InvoiceWithLedger, error) {
	if params.Quantity != nil && *params.Quantity < 1 {
		return nil, fmt.Errorf("quantity %d: %w", *params.Quantity, ErrInvalidLedgerInput)
	}
	if params.DiscountPercent != nil {
		if err := validatePercent(*params.DiscountPercent); err != nil {
			return nil, err
		}
	}

	arg := db.UpdateInvoiceItemParams{
		ID:       params.ItemID,
		Quantity: helpers.Int4FromPtr(params.Quantity),
	}
	if params.DiscountPercent != nil {
		arg.DiscountPercent = helpers.DecimalToNumeric(*params.DiscountPercent)
	}

	item, err := s.queries.UpdateInvoiceItem(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceItemNotFound
		}
		return nil, fmt.Errorf("failed to update invoice item: %w", err)
	}

	return s.GetInvoice(ctx, item.InvoiceID)
}

// RemoveInvoiceItem detaches a line from its invoice. Lines are removed for
// good, not soft-deleted.
func (s *InvoiceService) RemoveInvoiceItem(ctx context.Context, itemID uuid.UUID) (*InvoiceWithLedger, error) {
	item, err := s.queries.GetInvoiceItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceItemNotFound
		}
		return nil, fmt.Errorf("failed to get invoice item: %w", err)
	}

	if err := s.queries.DeleteInvoiceItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("failed to remove invoice item: %w", err)
	}

	return s.GetInvoice(ctx, item.InvoiceID)
}

// withLedger loads the invoice's items and derives its ledger.
func (s *InvoiceService) withLedger(ctx context.Context, invoice db.Invoice) (*InvoiceWithLedger, error) {
	items, err := s.queries.ListInvoiceItems(ctx, invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice items: %w", err)
	}

	ledgerItems := make([]LedgerItem, 0, len(items))
	for _, item := range items {
		ledgerItems = append(ledgerItems, LedgerItem{
			UnitPrice:       helpers.NumericToDecimal(item.UnitPrice),
			Quantity:        item.Quantity,
			DiscountPercent: helpers.NumericToDecimal(item.DiscountPercent),
		})
	}

	ledger, err := s.calc.ComputeLedger(ledgerItems,
		helpers.NumericToDecimal(invoice.DiscountPercent),
		helpers.NumericToDecimal(invoice.Deposit))
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, err)
	}

	return &InvoiceWithLedger{Invoice: invoice, Items: items, Ledger: ledger}, nil
}

// settleStockOnPaid deducts product stock when an invoice transitions into
// Paid. Stock never goes below zero; a shortfall is logged, not fatal.
func (s *InvoiceService) settleStockOnPaid(ctx context.Context, before, after *InvoiceWithLedger) error {
	if before.Ledger.Status == PaymentStatusPaid || after.Ledger.Status != PaymentStatusPaid {
		return nil
	}

	for _, item := range after.Items {
		if item.ItemType != constants.ItemTypeProduct || !item.ProductID.Valid {
			continue
		}
		productID := uuid.UUID(item.ProductID.Bytes)
		product, err := s.queries.AdjustProductStock(ctx, db.AdjustProductStockParams{
			ID:    productID,
			Delta: -item.Quantity,
		})
		if err != nil {
			return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
		}
		if product.StockQuantity == 0 {
			s.logger.Warn("Product stock exhausted",
				zap.String("product_id", productID.String()),
				zap.String("invoice_id", after.Invoice.ID.String()),
			)
		}
	}
	return nil
}
