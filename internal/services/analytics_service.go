package services

import (
	"context"
	"fmt"

	"github.com/dogtorvet/dogtorvet-api/internal/constants"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AnalyticsService aggregates dashboard metrics. Everything financial is
// recomputed through the ledger calculator from raw invoice rows, so the
// dashboard can never disagree with the invoice screens.
type AnalyticsService struct {
	queries db.Querier
	logger  *zap.Logger
	calc    *LedgerCalculator
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(queries db.Querier) *AnalyticsService {
	return &AnalyticsService{
		queries: queries,
		logger:  logger.Log,
		calc:    NewLedgerCalculator(),
	}
}

// DashboardMetrics is the clinic overview returned to the dashboard.
type DashboardMetrics struct {
	TotalClients          int64           `json:"total_clients"`
	TotalPets             int64           `json:"total_pets"`
	ScheduledAppointments int64           `json:"scheduled_appointments"`
	CompletedAppointments int64           `json:"completed_appointments"`
	TotalInvoices         int64           `json:"total_invoices"`
	PendingInvoices       int64           `json:"pending_invoices"`
	PaidInvoices          int64           `json:"paid_invoices"`
	EmptyInvoices         int64           `json:"empty_invoices"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	OutstandingBalance    decimal.Decimal `json:"outstanding_balance"`
	LowStockProducts      int64           `json:"low_stock_products"`
}

// LowStockThreshold is the default reorder point for the dashboard counter.
const LowStockThreshold = 5

// GetDashboardMetrics computes the clinic overview in one pass over the
// invoice ledger rows plus a handful of count queries.
func (s *AnalyticsService) GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	metrics := &DashboardMetrics{
		TotalRevenue:       decimal.Zero,
		OutstandingBalance: decimal.Zero,
	}

	var err error
	if metrics.TotalClients, err = s.queries.CountClients(ctx, db.CountClientsParams{}); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	if metrics.TotalPets, err = s.queries.CountPets(ctx, db.CountPetsParams{}); err != nil {
		return nil, fmt.Errorf("failed to count pets: %w", err)
	}
	if metrics.ScheduledAppointments, err = s.queries.CountAppointmentsByStatus(ctx, constants.AppointmentScheduled); err != nil {
		return nil, fmt.Errorf("failed to count scheduled appointments: %w", err)
	}
	if metrics.CompletedAppointments, err = s.queries.CountAppointmentsByStatus(ctx, constants.AppointmentCompleted); err != nil {
		return nil, fmt.Errorf("failed to count completed appointments: %w", err)
	}

	lowStock, err := s.queries.ListLowStockProducts(ctx, LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}
	metrics.LowStockProducts = int64(len(lowStock))

	ledgers, err := s.ComputeAllLedgers(ctx)
	if err != nil {
		return nil, err
	}

	for _, ledger := range ledgers {
		metrics.TotalInvoices++
		switch ledger.Status {
		case PaymentStatusPaid:
			metrics.PaidInvoices++
		case PaymentStatusPending:
			metrics.PendingInvoices++
			metrics.OutstandingBalance = metrics.OutstandingBalance.Add(ledger.BalanceDue)
		case PaymentStatusEmpty:
			metrics.EmptyInvoices++
		}
		// Revenue counts money actually taken, which is the deposit.
		metrics.TotalRevenue = metrics.TotalRevenue.Add(ledger.Deposit)
	}

	s.logger.Debug("Dashboard metrics computed",
		zap.Int64("invoices", metrics.TotalInvoices),
		zap.String("revenue", metrics.TotalRevenue.String()),
	)
	return metrics, nil
}

// ComputeAllLedgers recomputes the ledger of every active invoice from the
// bulk invoice/item join.
func (s *AnalyticsService) ComputeAllLedgers(ctx context.Context) (map[string]*Ledger, error) {
	rows, err := s.queries.ListInvoiceLedgerRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger rows: %w", err)
	}

	type invoiceInput struct {
		discountPercent decimal.Decimal
		deposit         decimal.Decimal
		items           []LedgerItem
	}

	order := make([]string, 0)
	inputs := make(map[string]*invoiceInput)
	for _, row := range rows {
		key := row.InvoiceID.String()
		input, ok := inputs[key]
		if !ok {
			input = &invoiceInput{
				discountPercent: helpers.NumericToDecimal(row.DiscountPercent),
				deposit:         helpers.NumericToDecimal(row.Deposit),
			}
			inputs[key] = input
			order = append(order, key)
		}
		// LEFT JOIN leaves item columns NULL for empty invoices.
		if row.ItemQuantity.Valid {
			input.items = append(input.items, LedgerItem{
				UnitPrice:       helpers.NumericToDecimal(row.ItemUnitPrice),
				Quantity:        row.ItemQuantity.Int32,
				DiscountPercent: helpers.NumericToDecimal(row.ItemDiscountPercent),
			})
		}
	}

	ledgers := make(map[string]*Ledger, len(inputs))
	for _, key := range order {
		input := inputs[key]
		ledger, err := s.calc.ComputeLedger(input.items, input.discountPercent, input.deposit)
		if err != nil {
			return nil, fmt.Errorf("invoice %s: %w", key, err)
		}
		ledgers[key] = ledger
	}
	return ledgers, nil
}
