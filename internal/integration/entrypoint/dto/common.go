// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details string   `json:"details,omitempty"`
	Issues  []string `json:"issues,omitempty"`
}

// MoneyResponse is an amount with its currency. Amount is a fixed-point
// string so no precision is lost in transit.
type MoneyResponse struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// ToMoneyResponse converts a Money value to a MoneyResponse DTO.
func ToMoneyResponse(m valueobject.Money) MoneyResponse {
	return MoneyResponse{
		Amount:    formatAmount(m.Amount(), m.Currency()),
		Currency:  m.Currency(),
		Formatted: m.Format(),
	}
}

func formatAmount(d decimal.Decimal, currency string) string {
	return d.StringFixed(valueobject.MinorUnitDigits(currency))
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
