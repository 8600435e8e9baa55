package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidLedgerInput is returned when a ledger input is out of range
// (negative price, quantity or deposit, or a discount outside 0-100).
var ErrInvalidLedgerInput = errors.New("invalid ledger input")

// PaymentStatus is derived from an invoice's figures and never stored.
type PaymentStatus string

const (
	// PaymentStatusEmpty means the invoice has no billable value (total is zero)
	PaymentStatusEmpty PaymentStatus = "empty"
	// PaymentStatusPending means the invoice has value not yet covered by the deposit
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid means the deposit covers (or exceeds) the total
	PaymentStatusPaid PaymentStatus = "paid"
)

// LedgerItem is one invoice line as the calculator sees it.
type LedgerItem struct {
	UnitPrice       decimal.Decimal
	Quantity        int32
	DiscountPercent decimal.Decimal
}

// Ledger contains the derived financial figures of an invoice. All amounts
// are rounded to two decimal places.
type Ledger struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Total           decimal.Decimal `json:"total"`
	BalanceDue      decimal.Decimal `json:"balance_due"`
	Status          PaymentStatus   `json:"status"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Deposit         decimal.Decimal `json:"deposit"`
}

// LedgerCalculator derives invoice totals and payment status. It is
// stateless; a single instance is shared by the invoice and analytics
// services.
type LedgerCalculator struct{}

// NewLedgerCalculator creates a new ledger calculator
func NewLedgerCalculator() *LedgerCalculator {
	return &LedgerCalculator{}
}

var hundred = decimal.NewFromInt(100)

// ComputeLedger derives subtotal, discount amount, total and balance due
// from the invoice lines, the invoice-level discount percent and the deposit
// paid so far. Line math is exact; the total is rounded to cents once and
// balance due and status are derived from that rounded figure, so a deposit
// equal to the reported total always settles the invoice.
// Out-of-range input fails the whole computation, nothing is clamped.
func (lc *LedgerCalculator) ComputeLedger(items []LedgerItem, discountPercent, deposit decimal.Decimal) (*Ledger, error) {
	if err := validatePercent(discountPercent); err != nil {
		return nil, fmt.Errorf("invoice discount: %w", err)
	}
	if deposit.IsNegative() {
		return nil, fmt.Errorf("deposit %s: %w", deposit, ErrInvalidLedgerInput)
	}

	subtotal := decimal.Zero
	for i, item := range items {
		lineTotal, err := lc.LineTotal(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		subtotal = subtotal.Add(lineTotal)
	}

	discountAmount := subtotal.Mul(discountPercent).Div(hundred)
	total := subtotal.Sub(discountAmount).Round(2)
	deposit = deposit.Round(2)

	return &Ledger{
		Subtotal:        subtotal.Round(2),
		DiscountAmount:  discountAmount.Round(2),
		Total:           total,
		BalanceDue:      total.Sub(deposit),
		Status:          lc.DeriveStatus(total, deposit),
		DiscountPercent: discountPercent,
		Deposit:         deposit,
	}, nil
}

// LineTotal computes the net price of a single line:
// unit price x quantity, less the line's own discount. Full precision.
func (lc *LedgerCalculator) LineTotal(item LedgerItem) (decimal.Decimal, error) {
	if item.UnitPrice.IsNegative() {
		return decimal.Zero, fmt.Errorf("unit price %s: %w", item.UnitPrice, ErrInvalidLedgerInput)
	}
	if item.Quantity < 0 {
		return decimal.Zero, fmt.Errorf("quantity %d: %w", item.Quantity, ErrInvalidLedgerInput)
	}
	if err := validatePercent(item.DiscountPercent); err != nil {
		return decimal.Zero, err
	}

	gross := item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
	return gross.Mul(hundred.Sub(item.DiscountPercent)).Div(hundred), nil
}

// DeriveStatus classifies an invoice from its total and deposit:
// zero total is Empty regardless of deposit, a covered positive total is
// Paid (overpayment included), anything else is Pending.
func (lc *LedgerCalculator) DeriveStatus(total, deposit decimal.Decimal) PaymentStatus {
	if total.IsZero() {
		return PaymentStatusEmpty
	}
	if total.Sub(deposit).LessThanOrEqual(decimal.Zero) {
		return PaymentStatusPaid
	}
	return PaymentStatusPending
}

func validatePercent(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return fmt.Errorf("discount percent %s out of range: %w", pct, ErrInvalidLedgerInput)
	}
	return nil
}
