// Package error defines domain-specific errors for the Ledgerly application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetPeriodTaken is returned when a budget already exists for the category and period.
	ErrBudgetPeriodTaken = errors.New("budget already exists for this category and period")

	// ErrInvalidBudgetMonth is returned when the budget month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")

	// ErrInvalidBudgetYear is returned when the budget year is invalid.
	ErrInvalidBudgetYear = errors.New("invalid budget year")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrBudgetCategoryNotFound is returned when the budget's category is not found.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrBudgetCategoryNotOwned is returned when the budget's category does not belong to the user.
	ErrBudgetCategoryNotOwned = errors.New("category does not belong to user")

	// ErrNotAuthorizedToModifyBudget is returned when user is not authorized to modify a budget.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetMonth      BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetYear       BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetAmount     BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetPeriodTaken       BudgetErrorCode = "BGT-010004"
	ErrCodeBudgetNotFound          BudgetErrorCode = "BGT-010005"
	ErrCodeNotAuthorizedBudget     BudgetErrorCode = "BGT-010006"
	ErrCodeBudgetCategoryNotFound  BudgetErrorCode = "BGT-010007"
	ErrCodeBudgetCategoryNotOwned  BudgetErrorCode = "BGT-010008"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
