package valueobject

import (
	"sort"

	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// Allocate splits total across weights proportionally using the largest
// remainder method in integer minor units. Every part is floored first and
// the leftover minor units go one by one to the largest fractional
// remainders, ties broken by larger weight and then lower index.
// The parts always sum to total exactly. A zero weight always gets zero.
func Allocate(total Money, weights []int64) ([]Money, error) {
	if total.IsNegative() {
		return nil, domainerror.ErrNegativeAllocation
	}
	totalMinor, err := total.MinorUnits()
	if err != nil {
		return nil, err
	}

	var weightSum int64
	for _, w := range weights {
		if w < 0 {
			return nil, domainerror.ErrInvalidAllocationWeights
		}
		weightSum += w
	}

	parts := make([]Money, len(weights))
	if weightSum == 0 {
		if !totalMinor.IsZero() {
			return nil, domainerror.ErrInvalidAllocationWeights
		}
		for i := range parts {
			parts[i] = ZeroMoney(total.Currency())
		}
		return parts, nil
	}

	sum := decimal.NewFromInt(weightSum)
	floors := make([]decimal.Decimal, len(weights))
	remainders := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	for i, w := range weights {
		q, r := totalMinor.Mul(decimal.NewFromInt(w)).QuoRem(sum, 0)
		floors[i] = q
		remainders[i] = r
		allocated = allocated.Add(q)
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if c := remainders[ia].Cmp(remainders[ib]); c != 0 {
			return c > 0
		}
		if weights[ia] != weights[ib] {
			return weights[ia] > weights[ib]
		}
		return ia < ib
	})

	// The residual is strictly less than the number of non-zero remainders.
	residual := totalMinor.Sub(allocated).IntPart()
	for k := int64(0); k < residual; k++ {
		i := order[k]
		floors[i] = floors[i].Add(decimal.NewFromInt(1))
	}

	digits := MinorUnitDigits(total.Currency())
	for i, minor := range floors {
		parts[i] = NewMoney(minor.Shift(-digits), total.Currency())
	}
	return parts, nil
}
