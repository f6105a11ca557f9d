// Package error defines domain-specific errors for the Ledgerly application.
package error

import "errors"

// Statement import/export domain errors.
var (
	// ErrEmptyStatement is returned when the statement body contains no data rows.
	ErrEmptyStatement = errors.New("statement contains no data")

	// ErrMissingStatementColumns is returned when the statement header lacks required columns.
	ErrMissingStatementColumns = errors.New("statement header is missing required columns")

	// ErrMalformedStatement is returned when the statement cannot be parsed at all.
	ErrMalformedStatement = errors.New("statement could not be parsed")
)

// StatementErrorCode defines error codes for statement errors.
// Format: STM-XXYYYY where XX is category and YYYY is specific error.
type StatementErrorCode string

const (
	// Import errors (01XXXX)
	ErrCodeEmptyStatement          StatementErrorCode = "STM-010001"
	ErrCodeMissingStatementColumns StatementErrorCode = "STM-010002"
	ErrCodeMalformedStatement      StatementErrorCode = "STM-010003"
)

// StatementError represents a statement error with code and message.
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
