// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Payout email outbox errors.
var (
	// ErrUnknownEmailTemplate is returned for a job whose template the renderer does not know.
	ErrUnknownEmailTemplate = errors.New("unknown email template")

	// ErrEmailJobNotFound is returned when an outbox job does not exist.
	ErrEmailJobNotFound = errors.New("email job not found")
)

// EmailErrorCode defines error codes for the payout email outbox.
// Format: OBX-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Enqueue errors (01XXXX)
	ErrCodeEmailEnqueueFailed EmailErrorCode = "OBX-010001"

	// Delivery errors (02XXXX)
	ErrCodeEmailRejected EmailErrorCode = "OBX-020001"
	ErrCodeEmailDeferred EmailErrorCode = "OBX-020002"

	// Rendering errors (03XXXX)
	ErrCodeUnknownEmailTemplate EmailErrorCode = "OBX-030001"
	ErrCodeEmailRenderFailed    EmailErrorCode = "OBX-030002"
)

// EmailError is an outbox failure. Only ErrCodeEmailDeferred is retried.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsRetryableEmailError reports whether another delivery attempt may succeed.
// Errors without an outbox code are assumed transient.
func IsRetryableEmailError(err error) bool {
	var emailErr *EmailError
	if !errors.As(err, &emailErr) {
		return true
	}
	return emailErr.Code == ErrCodeEmailDeferred
}
