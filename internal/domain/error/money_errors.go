// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Money domain errors. These are returned by value objects and are wrapped by
// the coded errors of the calling domain.
var (
	// ErrCurrencyMismatch is returned when two amounts in different currencies are combined.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrUnknownCurrency is returned when a currency code has no ISO 4217 metadata.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrSubMinorUnitAmount is returned when an amount has more precision than its currency allows.
	ErrSubMinorUnitAmount = errors.New("amount has more precision than the currency minor unit")

	// ErrInvalidAllocationWeights is returned when allocation weights are negative or all zero.
	ErrInvalidAllocationWeights = errors.New("invalid allocation weights")

	// ErrNegativeAllocation is returned when a negative total is allocated.
	ErrNegativeAllocation = errors.New("cannot allocate a negative amount")

	// ErrFXRateNotFound is returned when the FX table has no rate for a currency pair.
	ErrFXRateNotFound = errors.New("fx rate not found")

	// ErrInvalidCostBreakdown is returned when a cost breakdown item is malformed.
	ErrInvalidCostBreakdown = errors.New("invalid cost breakdown")
)
