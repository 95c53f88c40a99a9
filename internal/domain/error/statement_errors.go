// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Rental statement errors.
var (
	// ErrStatementNotFound is returned when a rental statement does not exist.
	ErrStatementNotFound = errors.New("rental statement not found")

	// ErrInvalidStatementPeriod is returned when the period start is not before its end.
	ErrInvalidStatementPeriod = errors.New("period start must be before period end")

	// ErrNegativeStatementAmount is returned when revenue, costs or fee is negative.
	ErrNegativeStatementAmount = errors.New("statement amounts must not be negative")

	// ErrNetDistributableMismatch is returned when net distributable does not equal gross minus costs and fee.
	ErrNetDistributableMismatch = errors.New("net distributable does not match gross revenue minus costs and fee")

	// ErrCostBreakdownMismatch is returned when the cost breakdown does not sum to operating costs.
	ErrCostBreakdownMismatch = errors.New("cost breakdown does not sum to operating costs")

	// ErrStatementPropertyMismatch is returned when a statement belongs to another property.
	ErrStatementPropertyMismatch = errors.New("rental statement belongs to another property")
)

// StatementErrorCode defines error codes for rental statement errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidStatementPeriod   StatementErrorCode = "STM-010001"
	ErrCodeNegativeStatementAmount  StatementErrorCode = "STM-010002"
	ErrCodeNetDistributableMismatch StatementErrorCode = "STM-010003"
	ErrCodeCostBreakdownMismatch    StatementErrorCode = "STM-010004"
	ErrCodeInvalidCostBreakdown     StatementErrorCode = "STM-010005"
	ErrCodeStatementCurrency        StatementErrorCode = "STM-010006"

	// Not found errors (04XXXX)
	ErrCodeStatementNotFound         StatementErrorCode = "STM-040001"
	ErrCodeStatementPropertyNotFound StatementErrorCode = "STM-040002"
)

// StatementError represents a rental statement error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError with the given code and message.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
