// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Share ledger errors.
var (
	// ErrInvalidShareCount is returned when a purchase asks for fewer than one share.
	ErrInvalidShareCount = errors.New("share count must be at least 1")

	// ErrInsufficientShares is returned when a purchase exceeds the available shares.
	ErrInsufficientShares = errors.New("insufficient shares available")

	// ErrPropertyClosed is returned when a purchase targets a closed property.
	ErrPropertyClosed = errors.New("property is closed for investment")

	// ErrInvestmentNotFound is returned when an investment does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentTransition is returned for a forbidden investment status change.
	ErrInvalidInvestmentTransition = errors.New("invalid investment status transition")
)

// ShareErrorCode defines error codes for share ledger errors.
// Format: SHR-XXYYYY where XX is category and YYYY is specific error.
type ShareErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidShareCount ShareErrorCode = "SHR-010001"
	ErrCodeMissingPurchase   ShareErrorCode = "SHR-010002"

	// Invariant errors (02XXXX)
	ErrCodeInsufficientShares ShareErrorCode = "SHR-020001"
	ErrCodePropertyClosed     ShareErrorCode = "SHR-020002"

	// Transition errors (03XXXX)
	ErrCodeInvalidInvestmentTransition ShareErrorCode = "SHR-030001"

	// Not found errors (04XXXX)
	ErrCodeSharePropertyNotFound ShareErrorCode = "SHR-040001"
	ErrCodeInvestmentNotFound    ShareErrorCode = "SHR-040002"
)

// ShareError represents a share ledger error with code and message.
type ShareError struct {
	Code    ShareErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShareError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShareError) Unwrap() error {
	return e.Err
}

// NewShareError creates a new ShareError with the given code and message.
func NewShareError(code ShareErrorCode, message string, err error) *ShareError {
	return &ShareError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
