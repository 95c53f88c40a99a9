package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

func TestFXTable_Convert(t *testing.T) {
	table := NewFXTable(map[string]decimal.Decimal{
		"usd:ngn": decimal.NewFromInt(1550),
		"EUR:NGN": decimal.Zero,
	})

	tests := []struct {
		name     string
		from     Money
		to       string
		expected string
		wantErr  error
	}{
		{name: "direct pair", from: NewMoney(decimal.NewFromInt(10), "USD"), to: "NGN", expected: "15500"},
		{name: "inverse pair", from: ngn("15500"), to: "usd", expected: "10"},
		{name: "same currency", from: ngn("12.34"), to: "NGN", expected: "12.34"},
		{name: "non positive rates are dropped", from: NewMoney(decimal.NewFromInt(1), "EUR"), to: "NGN", wantErr: domainerror.ErrFXRateNotFound},
		{name: "missing pair", from: ngn("1"), to: "GBP", wantErr: domainerror.ErrFXRateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(tt.from, tt.to)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Amount().Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got.Amount())
			}
		})
	}
}
