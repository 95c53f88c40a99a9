package valueobject

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// Money is an exact decimal amount tagged with its currency.
// Arithmetic never goes through floating point.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates a Money in the given currency.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the ISO 4217 code.
func (m Money) Currency() string { return m.currency }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// Equal reports whether both amount and currency match.
func (m Money) Equal(n Money) bool {
	return m.currency == n.currency && m.amount.Equal(n.amount)
}

// Add returns m + n.
func (m Money) Add(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, domainerror.ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(n.amount), currency: m.currency}, nil
}

// Sub returns m - n.
func (m Money) Sub(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, domainerror.ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Sub(n.amount), currency: m.currency}, nil
}

// Mul multiplies by an exact factor. The result is not rounded.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Round rounds half away from zero to the currency's minor unit.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(MinorUnitDigits(m.currency)), currency: m.currency}
}

// MinorUnits returns the amount expressed in minor units (kobo, cents).
// It fails when the amount carries sub-minor-unit precision.
func (m Money) MinorUnits() (decimal.Decimal, error) {
	minor := m.amount.Shift(MinorUnitDigits(m.currency))
	if !minor.Equal(minor.Truncate(0)) {
		return decimal.Zero, domainerror.ErrSubMinorUnitAmount
	}
	return minor, nil
}

// Cmp compares two amounts of the same currency.
func (m Money) Cmp(n Money) (int, error) {
	if m.currency != n.currency {
		return 0, domainerror.ErrCurrencyMismatch
	}
	return m.amount.Cmp(n.amount), nil
}

// WithinTolerance reports whether |m - n| <= tolerance.
func (m Money) WithinTolerance(n Money, tolerance decimal.Decimal) bool {
	if m.currency != n.currency {
		return false
	}
	return m.amount.Sub(n.amount).Abs().LessThanOrEqual(tolerance)
}

// Format renders the amount with the currency symbol, e.g. "₦1,234.50".
func (m Money) Format() string {
	cur := *money.New(0, m.currency).Currency()
	minor := m.amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// String implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(MinorUnitDigits(m.currency)) + " " + m.currency
}

// Sum adds amounts that must all share the given currency.
func Sum(currency string, amounts ...Money) (Money, error) {
	total := ZeroMoney(currency)
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
