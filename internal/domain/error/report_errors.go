// Package error defines domain-specific errors for the Salon POS backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportDate is returned when the report date is missing or malformed.
	ErrInvalidReportDate = errors.New("invalid report date, expected YYYY-MM-DD")

	// ErrInvalidReportMonth is returned when year/month do not form a valid calendar month.
	ErrInvalidReportMonth = errors.New("invalid report month")

	// ErrReportDataAccess is returned when the period summary queries fail hard.
	ErrReportDataAccess = errors.New("report data access failure")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportDate  ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportMonth ReportErrorCode = "RPT-010002"

	// Data access errors (02XXXX)
	ErrCodeReportDataAccess ReportErrorCode = "RPT-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
