// Package error defines domain-specific errors for the Ledgerly application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingReportMonth is returned when month is not provided.
	ErrMissingReportMonth = errors.New("month is required")

	// ErrMissingReportYear is returned when year is not provided.
	ErrMissingReportYear = errors.New("year is required")

	// ErrInvalidReportMonth is returned when month is outside 1-12.
	ErrInvalidReportMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidReportYear is returned when year is not a four-digit year.
	ErrInvalidReportYear = errors.New("invalid year")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingReportMonth DashboardErrorCode = "DSH-010001"
	ErrCodeMissingReportYear  DashboardErrorCode = "DSH-010002"
	ErrCodeInvalidReportMonth DashboardErrorCode = "DSH-010003"
	ErrCodeInvalidReportYear  DashboardErrorCode = "DSH-010004"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
