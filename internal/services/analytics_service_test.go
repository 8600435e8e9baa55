package services_test

import (
	"context"
	"testing"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/mocks"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ledgerRow(invoiceID uuid.UUID, discount, deposit, price string, qty int32, itemDiscount string) db.InvoiceLedgerRow {
	row := db.InvoiceLedgerRow{
		InvoiceID:       invoiceID,
		DiscountPercent: numeric(discount),
		Deposit:         numeric(deposit),
	}
	if qty > 0 {
		row.ItemUnitPrice = numeric(price)
		row.ItemQuantity = pgtype.Int4{Int32: qty, Valid: true}
		row.ItemDiscountPercent = numeric(itemDiscount)
	}
	return row
}

func TestAnalyticsService_GetDashboardMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paidID := uuid.New()    // 2 x 50, deposit 100 -> paid
	pendingID := uuid.New() // 200 - 10% = 180, deposit 30 -> pending, 150 due
	emptyID := uuid.New()   // no items

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().CountClients(gomock.Any(), db.CountClientsParams{}).Return(int64(12), nil)
	mockQuerier.EXPECT().CountPets(gomock.Any(), db.CountPetsParams{}).Return(int64(19), nil)
	mockQuerier.EXPECT().CountAppointmentsByStatus(gomock.Any(), "scheduled").Return(int64(4), nil)
	mockQuerier.EXPECT().CountAppointmentsByStatus(gomock.Any(), "completed").Return(int64(31), nil)
	mockQuerier.EXPECT().ListLowStockProducts(gomock.Any(), int32(services.LowStockThreshold)).
		Return([]db.Product{{ID: uuid.New()}}, nil)
	mockQuerier.EXPECT().ListInvoiceLedgerRows(gomock.Any()).Return([]db.InvoiceLedgerRow{
		ledgerRow(paidID, "0", "100", "50", 2, "0"),
		ledgerRow(pendingID, "10", "30", "100", 2, "0"),
		ledgerRow(emptyID, "0", "0", "", 0, ""),
	}, nil)

	service := services.NewAnalyticsService(mockQuerier)
	metrics, err := service.GetDashboardMetrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), metrics.TotalClients)
	assert.Equal(t, int64(19), metrics.TotalPets)
	assert.Equal(t, int64(4), metrics.ScheduledAppointments)
	assert.Equal(t, int64(31), metrics.CompletedAppointments)
	assert.Equal(t, int64(1), metrics.LowStockProducts)

	assert.Equal(t, int64(3), metrics.TotalInvoices)
	assert.Equal(t, int64(1), metrics.PaidInvoices)
	assert.Equal(t, int64(1), metrics.PendingInvoices)
	assert.Equal(t, int64(1), metrics.EmptyInvoices)

	assert.True(t, metrics.TotalRevenue.Equal(decimal.NewFromInt(130)), "revenue = %s", metrics.TotalRevenue)
	assert.True(t, metrics.OutstandingBalance.Equal(decimal.NewFromInt(150)), "outstanding = %s", metrics.OutstandingBalance)
}

func TestAnalyticsService_ComputeAllLedgers_GroupsItemsByInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListInvoiceLedgerRows(gomock.Any()).Return([]db.InvoiceLedgerRow{
		ledgerRow(invoiceID, "0", "0", "40", 1, "0"),
		ledgerRow(invoiceID, "0", "0", "10", 2, "0"),
	}, nil)

	service := services.NewAnalyticsService(mockQuerier)
	ledgers, err := service.ComputeAllLedgers(context.Background())
	require.NoError(t, err)

	require.Len(t, ledgers, 1)
	ledger := ledgers[invoiceID.String()]
	require.NotNil(t, ledger)
	assert.True(t, ledger.Subtotal.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, services.PaymentStatusPending, ledger.Status)
}
