// Package error defines domain-specific errors for the Pensive application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseTitle is returned when the title is empty or too long.
	ErrInvalidExpenseTitle = errors.New("invalid expense title")

	// ErrInvalidExpenseAmount is returned when the amount is not strictly positive.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidExpenseCategory is returned when the category is empty.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidExpenseStatus is returned when the status is not a known value.
	ErrInvalidExpenseStatus = errors.New("invalid expense status")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseTitle    ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseStatus   ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseNotFound        ExpenseErrorCode = "EXP-010005"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
