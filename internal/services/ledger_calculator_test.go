package services_test

import (
	"testing"

	"github.com/dogtorvet/dogtorvet-api/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func item(price string, qty int32, discount string) services.LedgerItem {
	return services.LedgerItem{UnitPrice: dec(price), Quantity: qty, DiscountPercent: dec(discount)}
}

func TestComputeLedger(t *testing.T) {
	calc := services.NewLedgerCalculator()

	tests := []struct {
		name            string
		items           []services.LedgerItem
		discountPercent string
		deposit         string
		wantSubtotal    string
		wantDiscount    string
		wantTotal       string
		wantBalanceDue  string
		wantStatus      services.PaymentStatus
	}{
		{
			name:            "empty invoice",
			items:           nil,
			discountPercent: "0",
			deposit:         "0",
			wantSubtotal:    "0",
			wantDiscount:    "0",
			wantTotal:       "0",
			wantBalanceDue:  "0",
			wantStatus:      services.PaymentStatusEmpty,
		},
		{
			name:            "single item no discounts",
			items:           []services.LedgerItem{item("100", 2, "0")},
			discountPercent: "0",
			deposit:         "0",
			wantSubtotal:    "200",
			wantDiscount:    "0",
			wantTotal:       "200",
			wantBalanceDue:  "200",
			wantStatus:      services.PaymentStatusPending,
		},
		{
			name:            "item level discount applied",
			items:           []services.LedgerItem{item("100", 1, "25")},
			discountPercent: "0",
			deposit:         "0",
			wantSubtotal:    "75",
			wantDiscount:    "0",
			wantTotal:       "75",
			wantBalanceDue:  "75",
			wantStatus:      services.PaymentStatusPending,
		},
		{
			name:            "invoice discount applied after subtotal",
			items:           []services.LedgerItem{item("100", 1, "0"), item("50", 2, "0")},
			discountPercent: "10",
			deposit:         "0",
			wantSubtotal:    "200",
			wantDiscount:    "20",
			wantTotal:       "180",
			wantBalanceDue:  "180",
			wantStatus:      services.PaymentStatusPending,
		},
		{
			name:            "deposit fully covers total",
			items:           []services.LedgerItem{item("100", 2, "0")},
			discountPercent: "10",
			deposit:         "180",
			wantSubtotal:    "200",
			wantDiscount:    "20",
			wantTotal:       "180",
			wantBalanceDue:  "0",
			wantStatus:      services.PaymentStatusPaid,
		},
		{
			name:            "deposit partially covers total",
			items:           []services.LedgerItem{item("100", 2, "0")},
			discountPercent: "10",
			deposit:         "50",
			wantSubtotal:    "200",
			wantDiscount:    "20",
			wantTotal:       "180",
			wantBalanceDue:  "130",
			wantStatus:      services.PaymentStatusPending,
		},
		{
			name:            "overpayment stays paid with negative balance",
			items:           []services.LedgerItem{item("100", 1, "0")},
			discountPercent: "0",
			deposit:         "150",
			wantSubtotal:    "100",
			wantDiscount:    "0",
			wantTotal:       "100",
			wantBalanceDue:  "-50",
			wantStatus:      services.PaymentStatusPaid,
		},
		{
			name:            "zero total invoice stays empty regardless of deposit",
			items:           nil,
			discountPercent: "0",
			deposit:         "500",
			wantSubtotal:    "0",
			wantDiscount:    "0",
			wantTotal:       "0",
			wantBalanceDue:  "-500",
			wantStatus:      services.PaymentStatusEmpty,
		},
		{
			name:            "full invoice discount zeroes total",
			items:           []services.LedgerItem{item("100", 1, "0")},
			discountPercent: "100",
			deposit:         "0",
			wantSubtotal:    "100",
			wantDiscount:    "100",
			wantTotal:       "0",
			wantBalanceDue:  "0",
			wantStatus:      services.PaymentStatusEmpty,
		},
		{
			name:            "fractional prices round outputs to cents",
			items:           []services.LedgerItem{item("19.99", 3, "0"), item("0.05", 1, "0")},
			discountPercent: "7.5",
			deposit:         "0",
			wantSubtotal:    "60.02",
			wantDiscount:    "4.5",
			wantTotal:       "55.52",
			wantBalanceDue:  "55.52",
			wantStatus:      services.PaymentStatusPending,
		},
		{
			name:            "deposit equal to reported total settles a sub-cent exact total",
			items:           []services.LedgerItem{item("120", 2, "0"), item("35.50", 1, "10")},
			discountPercent: "5",
			deposit:         "258.35",
			wantSubtotal:    "271.95",
			wantDiscount:    "13.6",
			wantTotal:       "258.35",
			wantBalanceDue:  "0",
			wantStatus:      services.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, err := calc.ComputeLedger(tt.items, dec(tt.discountPercent), dec(tt.deposit))
			require.NoError(t, err)

			assert.True(t, ledger.Subtotal.Equal(dec(tt.wantSubtotal)), "subtotal = %s, want %s", ledger.Subtotal, tt.wantSubtotal)
			assert.True(t, ledger.DiscountAmount.Equal(dec(tt.wantDiscount)), "discountAmount = %s, want %s", ledger.DiscountAmount, tt.wantDiscount)
			assert.True(t, ledger.Total.Equal(dec(tt.wantTotal)), "total = %s, want %s", ledger.Total, tt.wantTotal)
			assert.True(t, ledger.BalanceDue.Equal(dec(tt.wantBalanceDue)), "balanceDue = %s, want %s", ledger.BalanceDue, tt.wantBalanceDue)
			assert.Equal(t, tt.wantStatus, ledger.Status)
		})
	}
}

func TestComputeLedger_InvalidInput(t *testing.T) {
	calc := services.NewLedgerCalculator()

	tests := []struct {
		name            string
		items           []services.LedgerItem
		discountPercent string
		deposit         string
	}{
		{"negative unit price", []services.LedgerItem{item("-5", 1, "0")}, "0", "0"},
		{"negative quantity", []services.LedgerItem{item("5", -1, "0")}, "0", "0"},
		{"item discount over 100", []services.LedgerItem{item("5", 1, "101")}, "0", "0"},
		{"item discount negative", []services.LedgerItem{item("5", 1, "-1")}, "0", "0"},
		{"invoice discount over 100", []services.LedgerItem{item("5", 1, "0")}, "100.01", "0"},
		{"invoice discount negative", []services.LedgerItem{item("5", 1, "0")}, "-10", "0"},
		{"negative deposit", []services.LedgerItem{item("5", 1, "0")}, "0", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, err := calc.ComputeLedger(tt.items, dec(tt.discountPercent), dec(tt.deposit))
			assert.Nil(t, ledger)
			assert.ErrorIs(t, err, services.ErrInvalidLedgerInput)
		})
	}
}

func TestComputeLedger_Idempotent(t *testing.T) {
	calc := services.NewLedgerCalculator()
	items := []services.LedgerItem{item("19.99", 3, "12.5"), item("250", 1, "0")}

	first, err := calc.ComputeLedger(items, dec("5"), dec("40"))
	require.NoError(t, err)
	second, err := calc.ComputeLedger(items, dec("5"), dec("40"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeLedger_OrderIndependent(t *testing.T) {
	calc := services.NewLedgerCalculator()
	a := item("19.99", 3, "12.5")
	b := item("250", 1, "0")
	c := item("7.25", 10, "50")

	forward, err := calc.ComputeLedger([]services.LedgerItem{a, b, c}, dec("8"), dec("0"))
	require.NoError(t, err)
	reversed, err := calc.ComputeLedger([]services.LedgerItem{c, b, a}, dec("8"), dec("0"))
	require.NoError(t, err)

	assert.True(t, forward.Subtotal.Equal(reversed.Subtotal))
	assert.True(t, forward.Total.Equal(reversed.Total))
}

func TestComputeLedger_MarkAsPaidRoundTrip(t *testing.T) {
	calc := services.NewLedgerCalculator()
	// exact total here is 258.3525; the reported total must still settle it
	items := []services.LedgerItem{item("120", 2, "0"), item("35.50", 1, "10")}

	pending, err := calc.ComputeLedger(items, dec("5"), dec("0"))
	require.NoError(t, err)
	require.Equal(t, services.PaymentStatusPending, pending.Status)

	paid, err := calc.ComputeLedger(items, dec("5"), pending.Total)
	require.NoError(t, err)

	assert.Equal(t, services.PaymentStatusPaid, paid.Status)
	assert.True(t, paid.BalanceDue.IsZero(), "balanceDue = %s", paid.BalanceDue)
}

func TestDeriveStatus(t *testing.T) {
	calc := services.NewLedgerCalculator()

	tests := []struct {
		name    string
		total   string
		deposit string
		want    services.PaymentStatus
	}{
		{"zero total zero deposit", "0", "0", services.PaymentStatusEmpty},
		{"zero total with deposit", "0", "100", services.PaymentStatusEmpty},
		{"uncovered total", "100", "0", services.PaymentStatusPending},
		{"partially covered", "100", "99.99", services.PaymentStatusPending},
		{"exactly covered", "100", "100", services.PaymentStatusPaid},
		{"overpaid", "100", "250", services.PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.DeriveStatus(dec(tt.total), dec(tt.deposit)))
		})
	}
}
