// Package valueobject contains domain value objects for the EstateShare ledger.
package valueobject

import (
	"strings"

	"github.com/Rhymond/go-money"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// DefaultCurrency is the ledger currency used when none is given.
const DefaultCurrency = "NGN"

// NormalizeCurrency upper-cases a currency code and checks it against the
// ISO 4217 table shipped with go-money.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency, nil
	}
	if money.GetCurrency(code) == nil {
		return "", domainerror.ErrUnknownCurrency
	}
	return code, nil
}

// MinorUnitDigits returns the number of fractional digits of a currency.
// Unknown currencies fall back to two digits.
func MinorUnitDigits(code string) int32 {
	if cur := money.GetCurrency(code); cur != nil {
		return int32(cur.Fraction)
	}
	return 2
}
