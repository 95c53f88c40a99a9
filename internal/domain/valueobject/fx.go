package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// FXTable is a static conversion table used for display only.
// Rates are keyed "FROM:TO"; the inverse pair is derived when missing.
// Ledger entries are never converted.
type FXTable struct {
	rates map[string]decimal.Decimal
}

// NewFXTable builds a table from "FROM:TO" keyed rates.
func NewFXTable(rates map[string]decimal.Decimal) *FXTable {
	t := &FXTable{rates: make(map[string]decimal.Decimal, len(rates))}
	for pair, rate := range rates {
		if rate.IsPositive() {
			t.rates[strings.ToUpper(pair)] = rate
		}
	}
	return t
}

// Rate returns the multiplier converting one unit of from into to.
func (t *FXTable) Rate(from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := t.rates[from+":"+to]; ok {
		return rate, nil
	}
	if rate, ok := t.rates[to+":"+from]; ok {
		return decimal.NewFromInt(1).DivRound(rate, 12), nil
	}
	return decimal.Zero, domainerror.ErrFXRateNotFound
}

// Convert converts m into currency to, rounded to the target minor unit.
func (t *FXTable) Convert(m Money, to string) (Money, error) {
	rate, err := t.Rate(m.Currency(), to)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(m.Amount().Mul(rate), strings.ToUpper(to)).Round(), nil
}
