package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/dogtorvet/dogtorvet-api/internal/mocks"
	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

func numeric(s string) pgtype.Numeric {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return helpers.DecimalToNumeric(d)
}

func productItem(invoiceID, productID uuid.UUID, price string, qty int32) db.InvoiceItem {
	return db.InvoiceItem{
		ID:              uuid.New(),
		InvoiceID:       invoiceID,
		ItemType:        "product",
		ProductID:       pgtype.UUID{Bytes: productID, Valid: true},
		ItemName:        "Flea Treatment",
		UnitPrice:       numeric(price),
		Quantity:        qty,
		DiscountPercent: numeric("0"),
	}
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	clientID := uuid.New()
	invoiceDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		params     services.CreateInvoiceParams
		mockSetup  func(m *mocks.MockQuerier)
		wantNumber string
		wantErr    string
	}{
		{
			name: "generates first number of the month",
			params: services.CreateInvoiceParams{
				ClientID:    clientID,
				InvoiceDate: invoiceDate,
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetClient(gomock.Any(), clientID).Return(db.Client{ID: clientID}, nil)
				m.EXPECT().CountInvoicesWithPrefix(gomock.Any(), "INV-202608-").Return(int64(0), nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
						assert.Equal(t, "INV-202608-0001", arg.InvoiceNumber)
						return db.Invoice{
							ID:              uuid.New(),
							InvoiceNumber:   arg.InvoiceNumber,
							ClientID:        arg.ClientID,
							InvoiceDate:     arg.InvoiceDate,
							DiscountPercent: arg.DiscountPercent,
							Deposit:         arg.Deposit,
							Active:          true,
						}, nil
					})
				m.EXPECT().ListInvoiceItems(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantNumber: "INV-202608-0001",
		},
		{
			name: "continues the monthly sequence",
			params: services.CreateInvoiceParams{
				ClientID:    clientID,
				InvoiceDate: invoiceDate,
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetClient(gomock.Any(), clientID).Return(db.Client{ID: clientID}, nil)
				m.EXPECT().CountInvoicesWithPrefix(gomock.Any(), "INV-202608-").Return(int64(41), nil)
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
						return db.Invoice{
							ID:              uuid.New(),
							InvoiceNumber:   arg.InvoiceNumber,
							ClientID:        arg.ClientID,
							InvoiceDate:     arg.InvoiceDate,
							DiscountPercent: arg.DiscountPercent,
							Deposit:         arg.Deposit,
							Active:          true,
						}, nil
					})
				m.EXPECT().ListInvoiceItems(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantNumber: "INV-202608-0042",
		},
		{
			name: "rejects unknown client",
			params: services.CreateInvoiceParams{
				ClientID:    clientID,
				InvoiceDate: invoiceDate,
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetClient(gomock.Any(), clientID).Return(db.Client{}, pgx.ErrNoRows)
			},
			wantErr: "client not found",
		},
		{
			name: "rejects out of range discount",
			params: services.CreateInvoiceParams{
				ClientID:        clientID,
				InvoiceDate:     invoiceDate,
				DiscountPercent: decimal.NewFromInt(120),
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "invalid ledger input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewInvoiceService(mockQuerier)
			got, err := service.CreateInvoice(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumber, got.Invoice.InvoiceNumber)
			assert.Equal(t, services.PaymentStatusEmpty, got.Ledger.Status)
		})
	}
}

func TestInvoiceService_GetInvoice_DerivesLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	invoice := db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0007",
		ClientID:        uuid.New(),
		DiscountPercent: numeric("10"),
		Deposit:         numeric("50"),
		Active:          true,
	}
	items := []db.InvoiceItem{
		{ID: uuid.New(), InvoiceID: invoiceID, ItemType: "service", ItemName: "Checkup", UnitPrice: numeric("100"), Quantity: 2, DiscountPercent: numeric("0")},
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(items, nil)

	service := services.NewInvoiceService(mockQuerier)
	got, err := service.GetInvoice(context.Background(), invoiceID)
	require.NoError(t, err)

	assert.True(t, got.Ledger.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, got.Ledger.Total.Equal(decimal.NewFromInt(180)))
	assert.True(t, got.Ledger.BalanceDue.Equal(decimal.NewFromInt(130)))
	assert.Equal(t, services.PaymentStatusPending, got.Ledger.Status)
}

func TestInvoiceService_GetInvoice_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(db.Invoice{}, pgx.ErrNoRows)

	service := services.NewInvoiceService(mockQuerier)
	_, err := service.GetInvoice(context.Background(), invoiceID)
	assert.ErrorIs(t, err, services.ErrInvoiceNotFound)
}

func TestInvoiceService_MarkInvoicePaid_DeductsStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	productID := uuid.New()
	invoice := db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0009",
		ClientID:        uuid.New(),
		DiscountPercent: numeric("0"),
		Deposit:         numeric("0"),
		Active:          true,
	}
	items := []db.InvoiceItem{productItem(invoiceID, productID, "25", 3)}

	paidInvoice := invoice
	paidInvoice.Deposit = numeric("75")

	mockQuerier := mocks.NewMockQuerier(ctrl)
	// Pre-update reads (mark-as-paid snapshot plus the update's own check).
	mockQuerier.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil).Times(2)
	mockQuerier.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(items, nil).Times(3)
	mockQuerier.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateInvoiceParams) (db.Invoice, error) {
			deposit := helpers.NumericToDecimal(arg.Deposit)
			assert.True(t, deposit.Equal(decimal.NewFromInt(75)), "deposit = %s", deposit)
			return paidInvoice, nil
		})
	mockQuerier.EXPECT().AdjustProductStock(gomock.Any(), db.AdjustProductStockParams{ID: productID, Delta: -3}).
		Return(db.Product{ID: productID, StockQuantity: 7}, nil)

	service := services.NewInvoiceService(mockQuerier)
	got, err := service.MarkInvoicePaid(context.Background(), invoiceID)
	require.NoError(t, err)

	assert.Equal(t, services.PaymentStatusPaid, got.Ledger.Status)
	assert.True(t, got.Ledger.BalanceDue.IsZero())
}

func TestInvoiceService_MarkInvoicePaid_RejectsEmptyInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	invoice := db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0010",
		DiscountPercent: numeric("0"),
		Deposit:         numeric("0"),
		Active:          true,
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(nil, nil)

	service := services.NewInvoiceService(mockQuerier)
	_, err := service.MarkInvoicePaid(context.Background(), invoiceID)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrEmptyInvoice)
}

func TestInvoiceService_UpdateInvoice_NoStockChangeWhenAlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	productID := uuid.New()
	invoice := db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0011",
		ClientID:        uuid.New(),
		DiscountPercent: numeric("0"),
		Deposit:         numeric("100"),
		Active:          true,
	}
	items := []db.InvoiceItem{productItem(invoiceID, productID, "100", 1)}

	notes := "follow-up in two weeks"

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(items, nil).Times(2)
	mockQuerier.EXPECT().UpdateInvoice(gomock.Any(), gomock.Any()).Return(invoice, nil)
	// No AdjustProductStock expectation: an already paid invoice must not
	// deduct stock again.

	service := services.NewInvoiceService(mockQuerier)
	_, err := service.UpdateInvoice(context.Background(), services.UpdateInvoiceParams{ID: invoiceID, Notes: &notes})
	require.NoError(t, err)
}

func TestInvoiceService_AddInvoiceItem(t *testing.T) {
	invoiceID := uuid.New()
	serviceID := uuid.New()
	productID := uuid.New()

	invoice := db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0012",
		ClientID:        uuid.New(),
		DiscountPercent: numeric("0"),
		Deposit:         numeric("0"),
		Active:          true,
	}

	tests := []struct {
		name      string
		params    services.AddInvoiceItemParams
		mockSetup func(m *mocks.MockQuerier)
		wantErr   string
	}{
		{
			name: "snapshots service price and name",
			params: services.AddInvoiceItemParams{
				InvoiceID: invoiceID,
				ServiceID: &serviceID,
				Quantity:  1,
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil).Times(2)
				m.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(nil, nil).Times(2)
				m.EXPECT().GetService(gomock.Any(), serviceID).Return(db.Service{
					ID:     serviceID,
					Name:   "Dental Cleaning",
					Price:  numeric("85.50"),
					Active: true,
				}, nil)
				m.EXPECT().CreateInvoiceItem(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateInvoiceItemParams) (db.InvoiceItem, error) {
						assert.Equal(t, "service", arg.ItemType)
						assert.Equal(t, "Dental Cleaning", arg.ItemName)
						price := helpers.NumericToDecimal(arg.UnitPrice)
						assert.True(t, price.Equal(decimal.RequireFromString("85.50")))
						return db.InvoiceItem{ID: uuid.New(), InvoiceID: invoiceID}, nil
					})
			},
		},
		{
			name: "rejects inactive product",
			params: services.AddInvoiceItemParams{
				InvoiceID: invoiceID,
				ProductID: &productID,
				Quantity:  2,
			},
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
				m.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(nil, nil)
				m.EXPECT().GetProduct(gomock.Any(), productID).Return(db.Product{ID: productID, Active: false}, nil)
			},
			wantErr: "catalog item is inactive",
		},
		{
			name: "rejects both refs set",
			params: services.AddInvoiceItemParams{
				InvoiceID: invoiceID,
				ServiceID: &serviceID,
				ProductID: &productID,
				Quantity:  1,
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "exactly one of service_id or product_id",
		},
		{
			name: "rejects zero quantity",
			params: services.AddInvoiceItemParams{
				InvoiceID: invoiceID,
				ServiceID: &serviceID,
				Quantity:  0,
			},
			mockSetup: func(m *mocks.MockQuerier) {},
			wantErr:   "invalid ledger input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewInvoiceService(mockQuerier)
			_, err := service.AddInvoiceItem(context.Background(), tt.params)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInvoiceService_ListInvoices_StatusFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clientID := uuid.New()
	pending := db.Invoice{ID: uuid.New(), InvoiceNumber: "INV-202608-0001", ClientID: clientID, DiscountPercent: numeric("0"), Deposit: numeric("0"), Active: true}
	paidFirst := db.Invoice{ID: uuid.New(), InvoiceNumber: "INV-202608-0002", ClientID: clientID, DiscountPercent: numeric("0"), Deposit: numeric("60"), Active: true}
	paidSecond := db.Invoice{ID: uuid.New(), InvoiceNumber: "INV-202608-0003", ClientID: clientID, DiscountPercent: numeric("0"), Deposit: numeric("75"), Active: true}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListAllInvoices(gomock.Any(), gomock.Any()).
		Return([]db.Invoice{pending, paidFirst, paidSecond}, nil)
	for _, inv := range []db.Invoice{pending, paidFirst, paidSecond} {
		mockQuerier.EXPECT().ListInvoiceItems(gomock.Any(), inv.ID).Return([]db.InvoiceItem{
			{ID: uuid.New(), InvoiceID: inv.ID, ItemType: "service", ItemName: "Checkup", UnitPrice: numeric("60"), Quantity: 1, DiscountPercent: numeric("0")},
		}, nil)
	}

	service := services.NewInvoiceService(mockQuerier)
	got, total, err := service.ListInvoices(context.Background(), services.ListInvoicesParams{
		Status: services.PaymentStatusPaid,
		Limit:  1,
		Offset: 1,
	})
	require.NoError(t, err)

	// total counts the filtered set and the page is taken from it
	assert.Equal(t, int64(2), total)
	require.Len(t, got, 1)
	assert.Equal(t, paidSecond.ID, got[0].Invoice.ID)
	assert.Equal(t, services.PaymentStatusPaid, got[0].Ledger.Status)
}

func TestInvoiceService_RemoveInvoiceItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceID := uuid.New()
	itemID := uuid.New()
	invoice := db.Invoice{ID: invoiceID, InvoiceNumber: "INV-202608-0013", DiscountPercent: numeric("0"), Deposit: numeric("0"), Active: true}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetInvoiceItem(gomock.Any(), itemID).Return(db.InvoiceItem{ID: itemID, InvoiceID: invoiceID}, nil)
	mockQuerier.EXPECT().DeleteInvoiceItem(gomock.Any(), itemID).Return(nil)
	mockQuerier.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(invoice, nil)
	mockQuerier.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return(nil, nil)

	service := services.NewInvoiceService(mockQuerier)
	got, err := service.RemoveInvoiceItem(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, services.PaymentStatusEmpty, got.Ledger.Status)
}
