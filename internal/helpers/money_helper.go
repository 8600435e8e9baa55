package helpers

import (
	"bytes"
	"strings"

	"github.com/dogtorvet/dogtorvet-api/internal/logger"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NumericToDecimal converts a database numeric to a decimal, treating
// NULL/NaN as zero.
func NumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// DecimalToNumeric converts a decimal to a database numeric.
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// FormatCurrency renders an amount for display surfaces such as the PDF
// invoice: a dollar sign and exactly two decimal places. API responses carry
// bare fixed-2 strings; currency presentation is left to the client.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Amount is a decimal that unmarshals from either a JSON number or a numeric
// string. The backend wire format is not consistent about which one it sends,
// so coercion happens once here at the edge; everything past deserialization
// works with strict decimals. Unparsable input coerces to zero with a logged
// warning rather than poisoning a whole ledger.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		if logger.Log != nil {
			logger.Warn("Unparsable numeric field coerced to zero", zap.String("value", s))
		}
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.StringFixed(2)), nil
}
