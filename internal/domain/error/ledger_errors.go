// Package error defines domain-specific errors for the Salon POS backend.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrInvalidExpenseAmount is returned when an expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")

	// ErrEmptyExpenseDescription is returned when an expense description is empty.
	ErrEmptyExpenseDescription = errors.New("expense description is required")

	// ErrInvalidExpenseDate is returned when an expense date does not parse as a calendar date.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrInvalidLedgerDate is returned when a ledger operation receives an invalid date.
	ErrInvalidLedgerDate = errors.New("invalid ledger date")

	// ErrInvalidExpenseRange is returned when a range query has end before start.
	ErrInvalidExpenseRange = errors.New("end date must not be before start date")

	// ErrLedgerPersistence is returned when the balance store is unreachable or a write fails.
	ErrLedgerPersistence = errors.New("ledger persistence failure")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount    LedgerErrorCode = "LDG-010001"
	ErrCodeEmptyExpenseDescription LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidExpenseDate      LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidLedgerDate       LedgerErrorCode = "LDG-010004"
	ErrCodeInvalidExpenseRange     LedgerErrorCode = "LDG-010005"

	// Persistence errors (02XXXX)
	ErrCodeLedgerPersistence LedgerErrorCode = "LDG-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
