// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Property domain errors.
var (
	// ErrPropertyNotFound is returned when a property does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidPropertyName is returned when a property name is empty or too long.
	ErrInvalidPropertyName = errors.New("invalid property name")

	// ErrInvalidTotalShares is returned when total shares is not positive.
	ErrInvalidTotalShares = errors.New("total shares must be positive")

	// ErrInvalidPricePerShare is returned when the share price is not positive.
	ErrInvalidPricePerShare = errors.New("price per share must be positive")

	// ErrInvalidPropertyStatus is returned for an unknown property status.
	ErrInvalidPropertyStatus = errors.New("invalid property status")

	// ErrPropertyHasInvestments is returned when deleting a property with confirmed investments.
	ErrPropertyHasInvestments = errors.New("property has confirmed investments")

	// ErrPropertyHasDistributions is returned when deleting a property with declared distributions.
	ErrPropertyHasDistributions = errors.New("property has declared distributions")

	// ErrPropertyHasLedgerEntries is returned when deleting a property referenced by the ledger.
	ErrPropertyHasLedgerEntries = errors.New("property has ledger entries")
)

// PropertyErrorCode defines error codes for property errors.
// Format: PRP-XXYYYY where XX is category and YYYY is specific error.
type PropertyErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidPropertyName   PropertyErrorCode = "PRP-010001"
	ErrCodeInvalidTotalShares    PropertyErrorCode = "PRP-010002"
	ErrCodeInvalidPricePerShare  PropertyErrorCode = "PRP-010003"
	ErrCodeInvalidPropertyStatus PropertyErrorCode = "PRP-010004"
	ErrCodeInvalidCurrency       PropertyErrorCode = "PRP-010005"

	// Invariant errors (02XXXX)
	ErrCodePropertyHasInvestments   PropertyErrorCode = "PRP-020001"
	ErrCodePropertyHasDistributions PropertyErrorCode = "PRP-020002"
	ErrCodePropertyHasLedgerEntries PropertyErrorCode = "PRP-020003"

	// Not found errors (04XXXX)
	ErrCodePropertyNotFound PropertyErrorCode = "PRP-040001"
)

// PropertyError represents a property error with code and message.
type PropertyError struct {
	Code    PropertyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PropertyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PropertyError) Unwrap() error {
	return e.Err
}

// NewPropertyError creates a new PropertyError with the given code and message.
func NewPropertyError(code PropertyErrorCode, message string, err error) *PropertyError {
	return &PropertyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
