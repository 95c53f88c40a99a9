// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Investor profile errors.
var (
	// ErrInvestorNotFound is returned when an investor profile does not exist.
	ErrInvestorNotFound = errors.New("investor not found")

	// ErrInvalidInvestorEmail is returned when an investor email is missing or malformed.
	ErrInvalidInvestorEmail = errors.New("invalid investor email")

	// ErrInvalidInvestorRole is returned for an unknown investor role.
	ErrInvalidInvestorRole = errors.New("invalid investor role")

	// ErrInvalidKYCStatus is returned for an unknown KYC status.
	ErrInvalidKYCStatus = errors.New("invalid kyc status")
)

// InvestorErrorCode defines error codes for investor errors.
// Format: IVR-XXYYYY where XX is category and YYYY is specific error.
type InvestorErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidInvestorEmail InvestorErrorCode = "IVR-010001"
	ErrCodeInvalidInvestorRole  InvestorErrorCode = "IVR-010002"
	ErrCodeInvalidKYCStatus     InvestorErrorCode = "IVR-010003"
	ErrCodeInvalidInvestorName  InvestorErrorCode = "IVR-010004"

	// Not found errors (04XXXX)
	ErrCodeInvestorNotFound InvestorErrorCode = "IVR-040001"
)

// InvestorError represents an investor error with code and message.
type InvestorError struct {
	Code    InvestorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestorError) Unwrap() error {
	return e.Err
}

// NewInvestorError creates a new InvestorError with the given code and message.
func NewInvestorError(code InvestorErrorCode, message string, err error) *InvestorError {
	return &InvestorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
