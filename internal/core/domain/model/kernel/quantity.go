package kernel

import (
	"bytes"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantity is a decimal value object used for weights, box counts, prices and
// monetary totals. The zero value is a valid zero quantity.
//
// Persisted payloads historically carry quantities either as JSON numbers or as
// numeric strings; Quantity normalizes both forms during unmarshalling so the
// rest of the domain never re-checks the shape.
type Quantity struct {
	value decimal.Decimal
}

// ZeroQuantity returns the zero quantity.
func ZeroQuantity() Quantity {
	return Quantity{}
}

// NewQuantityFromFloat creates a quantity from a float64.
func NewQuantityFromFloat(f float64) Quantity {
	return Quantity{value: decimal.NewFromFloat(f)}
}

// NewQuantityFromInt creates a quantity from an integer count.
func NewQuantityFromInt(i int64) Quantity {
	return Quantity{value: decimal.NewFromInt(i)}
}

// NewQuantityFromString parses a quantity from a decimal string. A blank
// string parses as zero, matching how empty form fields round-trip through
// persisted payloads.
func NewQuantityFromString(s string) (Quantity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Quantity{}, nil
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return Quantity{value: value}, nil
}

// Add returns q + other.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// Sub returns q − other.
func (q Quantity) Sub(other Quantity) Quantity {
	return Quantity{value: q.value.Sub(other.value)}
}

// Mul returns q × other.
func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity{value: q.value.Mul(other.value)}
}

// Div returns q ÷ other rounded to 6 decimal places. Division by zero returns
// the zero quantity; callers guard totals before converting boxes to weight.
func (q Quantity) Div(other Quantity) Quantity {
	if other.value.IsZero() {
		return Quantity{}
	}
	return Quantity{value: q.value.DivRound(other.value, 6)}
}

// Round2 rounds to 2 decimal places, the precision of displayed totals.
func (q Quantity) Round2() Quantity {
	return Quantity{value: q.value.Round(2)}
}

// ClampZero returns the quantity floored at zero. Remainder arithmetic clamps
// here: an over-assignment never produces a negative remainder.
func (q Quantity) ClampZero() Quantity {
	if q.value.IsNegative() {
		return Quantity{}
	}
	return q
}

// IsZero reports whether the quantity is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// IsPositive reports whether the quantity is greater than zero.
func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

// IsNegative reports whether the quantity is less than zero.
func (q Quantity) IsNegative() bool {
	return q.value.IsNegative()
}

// LessThan reports whether q < other.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

// IsEqual reports whether two quantities are numerically equal.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value.Equal(other.value)
}

// Float64 returns the nearest float64 representation.
func (q Quantity) Float64() float64 {
	f, _ := q.value.Float64()
	return f
}

// String renders the quantity without trailing zeros.
func (q Quantity) String() string {
	return q.value.String()
}

// MarshalJSON renders the quantity as a bare JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*q = Quantity{}
		return nil
	}

	if trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' && len(trimmed) >= 2 {
		trimmed = trimmed[1 : len(trimmed)-1]
	}

	parsed, err := NewQuantityFromString(string(trimmed))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}
