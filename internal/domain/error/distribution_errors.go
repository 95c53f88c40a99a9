// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Distribution domain errors.
var (
	// ErrDistributionNotFound is returned when a distribution does not exist.
	ErrDistributionNotFound = errors.New("distribution not found")

	// ErrDuplicateDistribution is returned when a rental statement already has a distribution.
	ErrDuplicateDistribution = errors.New("rental statement already has a distribution")

	// ErrInvalidStatement is returned when a statement cannot be distributed.
	ErrInvalidStatement = errors.New("rental statement cannot be distributed")

	// ErrAlreadyDeclared is returned when declaring a distribution that is already declared or paid.
	ErrAlreadyDeclared = errors.New("distribution already declared")

	// ErrInvalidDistributionTransition is returned for a forbidden distribution status change.
	ErrInvalidDistributionTransition = errors.New("invalid distribution status transition")

	// ErrDistributionValidationFailed is returned when declaration is blocked by validation errors.
	ErrDistributionValidationFailed = errors.New("distribution validation failed")

	// ErrDistributionNotEditable is returned when payouts are changed after declaration.
	ErrDistributionNotEditable = errors.New("distribution can no longer be edited")

	// ErrPayoutNotFound is returned when a payout does not exist.
	ErrPayoutNotFound = errors.New("payout not found")
)

// DistributionErrorCode defines error codes for distribution errors.
// Format: DST-XXYYYY where XX is category and YYYY is specific error.
type DistributionErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeMissingDistributionFields DistributionErrorCode = "DST-010001"
	ErrCodeInvalidDistributionID     DistributionErrorCode = "DST-010002"

	// Invariant errors (02XXXX)
	ErrCodeDuplicateDistribution        DistributionErrorCode = "DST-020001"
	ErrCodeInvalidStatement             DistributionErrorCode = "DST-020002"
	ErrCodeDistributionValidationFailed DistributionErrorCode = "DST-020003"
	ErrCodeDistributionCurrency         DistributionErrorCode = "DST-020004"

	// Transition errors (03XXXX)
	ErrCodeAlreadyDeclared               DistributionErrorCode = "DST-030001"
	ErrCodeInvalidDistributionTransition DistributionErrorCode = "DST-030002"
	ErrCodeDistributionNotEditable       DistributionErrorCode = "DST-030003"

	// Not found errors (04XXXX)
	ErrCodeDistributionNotFound          DistributionErrorCode = "DST-040001"
	ErrCodeDistributionStatementNotFound DistributionErrorCode = "DST-040002"
	ErrCodeDistributionPropertyNotFound  DistributionErrorCode = "DST-040003"
	ErrCodePayoutNotFound                DistributionErrorCode = "DST-040004"
)

// DistributionError represents a distribution error with code and message.
// Issues carries the validation report codes when declaration is rejected.
type DistributionError struct {
	Code    DistributionErrorCode
	Message string
	Issues  []string
	Err     error
}

// Error implements the error interface.
func (e *DistributionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DistributionError) Unwrap() error {
	return e.Err
}

// NewDistributionError creates a new DistributionError with the given code and message.
func NewDistributionError(code DistributionErrorCode, message string, err error) *DistributionError {
	return &DistributionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
