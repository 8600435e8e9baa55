package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dogtorvet/dogtorvet-api/internal/auth"
	"github.com/dogtorvet/dogtorvet-api/internal/db"
	"github.com/dogtorvet/dogtorvet-api/internal/handlers"
	"github.com/dogtorvet/dogtorvet-api/internal/helpers"
	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/dogtorvet/dogtorvet-api/internal/mocks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func newTestCommon(t *testing.T, m *mocks.MockQuerier) *handlers.CommonServices {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret-0123456789abcdef", 30*time.Minute, 24*time.Hour)
	require.NoError(t, err)
	return handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:     m,
		Tokens: tokens,
		Logger: logger.Log,
	})
}

func num(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	return helpers.DecimalToNumeric(decimal.RequireFromString(s))
}

func performJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInvoiceHandler_GetInvoice_ReturnsDerivedLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	invoiceID := uuid.New()
	clientID := uuid.New()
	now := time.Now()

	m.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0007",
		ClientID:        clientID,
		InvoiceDate:     now,
		DiscountPercent: num(t, "10"),
		Deposit:         num(t, "50"),
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil)
	m.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{
		{
			ID:              uuid.New(),
			InvoiceID:       invoiceID,
			ItemType:        "service",
			ItemName:        "Consultation",
			UnitPrice:       num(t, "100"),
			Quantity:        2,
			DiscountPercent: num(t, "0"),
		},
	}, nil)

	router := gin.New()
	h := handlers.NewInvoiceHandler(common)
	router.GET("/invoices/:invoice_id", h.GetInvoice)

	w := performJSON(router, http.MethodGet, "/invoices/"+invoiceID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INV-202608-0007", resp["invoice_number"])
	assert.Equal(t, "200.00", resp["subtotal"])
	assert.Equal(t, "20.00", resp["discount_amount"])
	assert.Equal(t, "180.00", resp["total"])
	assert.Equal(t, "130.00", resp["balance_due"])
	assert.Equal(t, "pending", resp["status"])

	items, ok := resp["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	line := items[0].(map[string]any)
	assert.Equal(t, "Consultation", line["item_name"])
	assert.Equal(t, "200.00", line["line_total"])
}

func TestInvoiceHandler_CreateInvoice_CoercesNumericStrings(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	clientID := uuid.New()
	invoiceID := uuid.New()
	now := time.Now()
	prefix := fmt.Sprintf("INV-%s-", now.Format("200601"))

	m.EXPECT().GetClient(gomock.Any(), clientID).Return(db.Client{ID: clientID, Active: true}, nil)
	m.EXPECT().CountInvoicesWithPrefix(gomock.Any(), prefix).Return(int64(0), nil)
	m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
			assert.Equal(t, prefix+"0001", arg.InvoiceNumber)
			assert.True(t, helpers.NumericToDecimal(arg.DiscountPercent).Equal(decimal.RequireFromString("12.5")),
				"string discount should parse to 12.5")
			assert.True(t, helpers.NumericToDecimal(arg.Deposit).Equal(decimal.NewFromInt(25)),
				"numeric deposit should parse to 25")
			return db.Invoice{
				ID:              invoiceID,
				InvoiceNumber:   arg.InvoiceNumber,
				ClientID:        arg.ClientID,
				InvoiceDate:     arg.InvoiceDate,
				DiscountPercent: arg.DiscountPercent,
				Deposit:         arg.Deposit,
				Active:          true,
				CreatedAt:       now,
				UpdatedAt:       now,
			}, nil
		})
	m.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{}, nil)
	m.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(db.AuditLog{}, nil)

	router := gin.New()
	h := handlers.NewInvoiceHandler(common)
	router.POST("/invoices", h.CreateInvoice)

	w := performJSON(router, http.MethodPost, "/invoices", map[string]any{
		"client_id":        clientID.String(),
		"discount_percent": "12.5",
		"deposit":          25,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "empty", resp["status"], "invoice without items is empty regardless of deposit")
}

func TestInvoiceHandler_MarkInvoicePaid_RejectsEmptyInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	invoiceID := uuid.New()
	m.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(db.Invoice{
		ID:              invoiceID,
		InvoiceNumber:   "INV-202608-0001",
		ClientID:        uuid.New(),
		DiscountPercent: num(t, "0"),
		Deposit:         num(t, "0"),
		Active:          true,
	}, nil)
	m.EXPECT().ListInvoiceItems(gomock.Any(), invoiceID).Return([]db.InvoiceItem{}, nil)

	router := gin.New()
	h := handlers.NewInvoiceHandler(common)
	router.POST("/invoices/:invoice_id/pay", h.MarkInvoicePaid)

	w := performJSON(router, http.MethodPost, "/invoices/"+invoiceID.String()+"/pay", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestInvoiceHandler_AddInvoiceItem_RejectsAmbiguousReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	router := gin.New()
	h := handlers.NewInvoiceHandler(common)
	router.POST("/invoices/:invoice_id/items", h.AddInvoiceItem)

	w := performJSON(router, http.MethodPost, "/invoices/"+uuid.NewString()+"/items", map[string]any{
		"service_id": uuid.NewString(),
		"product_id": uuid.NewString(),
		"quantity":   1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_ListInvoices_RejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	router := gin.New()
	h := handlers.NewInvoiceHandler(common)
	router.GET("/invoices", h.ListInvoices)

	w := performJSON(router, http.MethodGet, "/invoices?status=overdue", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_GetInvoice_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockQuerier(ctrl)
	common := newTestCommon(t, m)

	router := gin.New()
	h := handlers.NewInvoiceHandler(common)
	router.GET("/invoices/:invoice_id", h.GetInvoice)

	w := performJSON(router, http.MethodGet, "/invoices/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
