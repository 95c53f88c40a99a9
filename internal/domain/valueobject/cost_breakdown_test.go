package valueobject

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

func TestCostBreakdown_Validate(t *testing.T) {
	tests := []struct {
		name      string
		breakdown CostBreakdown
		wantErr   bool
	}{
		{
			name: "valid items",
			breakdown: CostBreakdown{
				{Description: "Cleaning", Amount: decimal.RequireFromString("150.00")},
				{Description: "Repairs", Amount: decimal.RequireFromString("49.50")},
			},
		},
		{
			name:      "empty breakdown",
			breakdown: CostBreakdown{},
		},
		{
			name:      "missing description",
			breakdown: CostBreakdown{{Amount: decimal.NewFromInt(1)}},
			wantErr:   true,
		},
		{
			name:      "description too long",
			breakdown: CostBreakdown{{Description: strings.Repeat("x", 256), Amount: decimal.NewFromInt(1)}},
			wantErr:   true,
		},
		{
			name:      "negative amount",
			breakdown: CostBreakdown{{Description: "Refund", Amount: decimal.NewFromInt(-1)}},
			wantErr:   true,
		},
		{
			name:      "sub kobo amount",
			breakdown: CostBreakdown{{Description: "Fees", Amount: decimal.RequireFromString("1.001")}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.breakdown.Validate("NGN")
			if tt.wantErr && !errors.Is(err, domainerror.ErrInvalidCostBreakdown) {
				t.Errorf("expected ErrInvalidCostBreakdown, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCostBreakdown_Total(t *testing.T) {
	b := CostBreakdown{
		{Description: "Cleaning", Amount: decimal.RequireFromString("0.10")},
		{Description: "Repairs", Amount: decimal.RequireFromString("0.20")},
	}
	if !b.Total().Equal(decimal.RequireFromString("0.30")) {
		t.Errorf("expected 0.30, got %s", b.Total())
	}
}
