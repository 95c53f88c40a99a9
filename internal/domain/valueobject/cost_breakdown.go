package valueobject

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// CostItem is one line of a rental statement's operating costs.
type CostItem struct {
	Description string          `json:"description" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
}

// CostBreakdown itemises the operating costs of a rental statement.
type CostBreakdown []CostItem

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func costValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks every item and that amounts are non-negative and carry at
// most the currency's minor unit precision.
func (b CostBreakdown) Validate(currency string) error {
	digits := MinorUnitDigits(currency)
	for i, item := range b {
		if err := costValidator().Struct(item); err != nil {
			return fmt.Errorf("%w: item %d: %v", domainerror.ErrInvalidCostBreakdown, i, err)
		}
		if item.Amount.IsNegative() {
			return fmt.Errorf("%w: item %d: negative amount", domainerror.ErrInvalidCostBreakdown, i)
		}
		if !item.Amount.Equal(item.Amount.Round(digits)) {
			return fmt.Errorf("%w: item %d: %v", domainerror.ErrInvalidCostBreakdown, i, domainerror.ErrSubMinorUnitAmount)
		}
	}
	return nil
}

// Total sums the item amounts.
func (b CostBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b {
		total = total.Add(item.Amount)
	}
	return total
}
