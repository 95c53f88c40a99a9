package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		weights  []int64
		expected []string
	}{
		{
			name:     "two holders of a thousand shares",
			total:    "1000",
			weights:  []int64{333, 667},
			expected: []string{"333", "667"},
		},
		{
			name:     "three equal holders give the extra cent to the first",
			total:    "100",
			weights:  []int64{1, 1, 1},
			expected: []string{"33.34", "33.33", "33.33"},
		},
		{
			name:     "equal remainders go to the larger weight",
			total:    "0.02",
			weights:  []int64{1, 3},
			expected: []string{"0", "0.02"},
		},
		{
			name:     "zero weight receives nothing",
			total:    "1",
			weights:  []int64{10, 0, 5},
			expected: []string{"0.67", "0", "0.33"},
		},
		{
			name:     "zero total with no weight",
			total:    "0",
			weights:  []int64{0, 0},
			expected: []string{"0", "0"},
		},
		{
			name:     "no holders",
			total:    "0",
			weights:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := Allocate(ngn(tt.total), tt.weights)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(parts) != len(tt.expected) {
				t.Fatalf("expected %d parts, got %d", len(tt.expected), len(parts))
			}
			for i, want := range tt.expected {
				if !parts[i].Amount().Equal(decimal.RequireFromString(want)) {
					t.Errorf("part %d: expected %s, got %s", i, want, parts[i].Amount())
				}
			}
		})
	}
}

func TestAllocate_SumsToTotal(t *testing.T) {
	totals := []string{"0.01", "0.99", "1", "999.99", "12345.67", "1000000"}
	weightSets := [][]int64{
		{1},
		{1, 1},
		{7, 11, 13},
		{1, 2, 3, 4, 5, 6, 7},
		{999, 1},
		{3, 3, 3, 3, 3, 3, 3, 3, 3},
	}

	for _, total := range totals {
		for _, weights := range weightSets {
			parts, err := Allocate(ngn(total), weights)
			if err != nil {
				t.Fatalf("allocate %s over %v: %v", total, weights, err)
			}
			sum, err := Sum("NGN", parts...)
			if err != nil {
				t.Fatalf("sum: %v", err)
			}
			if !sum.Equal(ngn(total)) {
				t.Errorf("allocate %s over %v: parts sum to %s", total, weights, sum)
			}
			for i, p := range parts {
				if p.IsNegative() {
					t.Errorf("allocate %s over %v: part %d negative", total, weights, i)
				}
			}
		}
	}
}

func TestAllocate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		total   Money
		weights []int64
		want    error
	}{
		{name: "negative weight", total: ngn("10"), weights: []int64{1, -1}, want: domainerror.ErrInvalidAllocationWeights},
		{name: "positive total without weight", total: ngn("10"), weights: []int64{0}, want: domainerror.ErrInvalidAllocationWeights},
		{name: "negative total", total: ngn("-1"), weights: []int64{1}, want: domainerror.ErrNegativeAllocation},
		{name: "sub minor unit total", total: ngn("1.005"), weights: []int64{1}, want: domainerror.ErrSubMinorUnitAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Allocate(tt.total, tt.weights); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
