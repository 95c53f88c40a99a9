// Package error defines domain-specific errors for the EstateShare ledger.
package error

import "errors"

// Wallet and transaction ledger errors.
var (
	// ErrPayoutAlreadyPaid is returned when crediting a payout that is already paid.
	ErrPayoutAlreadyPaid = errors.New("payout already paid")

	// ErrDistributionNotDeclared is returned when crediting a payout of an undeclared distribution.
	ErrDistributionNotDeclared = errors.New("distribution is not declared")

	// ErrInvalidPayoutTransition is returned for a forbidden payout status change.
	ErrInvalidPayoutTransition = errors.New("invalid payout status transition")

	// ErrTransactionNotFound is returned when a ledger transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionSettled is returned when a settled ledger entry would be modified.
	ErrTransactionSettled = errors.New("settled transactions are immutable")

	// ErrDuplicateReference is returned when a transaction reference is already used.
	ErrDuplicateReference = errors.New("transaction reference already exists")
)

// WalletErrorCode defines error codes for wallet errors.
// Format: WLT-XXYYYY where XX is category and YYYY is specific error.
type WalletErrorCode string

const (
	// Input errors (01XXXX)
	ErrCodeInvalidWalletCurrency WalletErrorCode = "WLT-010001"
	ErrCodeMissingFailureReason  WalletErrorCode = "WLT-010002"

	// Invariant errors (02XXXX)
	ErrCodeDuplicateReference WalletErrorCode = "WLT-020001"

	// Transition errors (03XXXX)
	ErrCodePayoutAlreadyPaid       WalletErrorCode = "WLT-030001"
	ErrCodeDistributionNotDeclared WalletErrorCode = "WLT-030002"
	ErrCodeInvalidPayoutTransition WalletErrorCode = "WLT-030003"
	ErrCodeTransactionSettled      WalletErrorCode = "WLT-030004"

	// Not found errors (04XXXX)
	ErrCodeWalletPayoutNotFound WalletErrorCode = "WLT-040001"
	ErrCodeTransactionNotFound  WalletErrorCode = "WLT-040002"
)

// WalletError represents a wallet error with code and message.
type WalletError struct {
	Code    WalletErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WalletError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WalletError) Unwrap() error {
	return e.Err
}

// NewWalletError creates a new WalletError with the given code and message.
func NewWalletError(code WalletErrorCode, message string, err error) *WalletError {
	return &WalletError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
