// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/application/adapter"
	"github.com/pensive/backend/internal/domain/entity"
	domainerror "github.com/pensive/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Title       string
	Amount      decimal.Decimal
	Category    string
	Status      entity.ExpenseStatus
	Description string
	// Date is the raw caller-supplied date string. An empty or unparseable
	// value resolves to the current UTC time rather than an error.
	Date string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.ExpenseStatusPending
	}
	if !status.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseStatus,
			"status must be 'pending', 'completed' or 'cancelled'",
			domainerror.ErrInvalidExpenseStatus,
		)
	}

	expense := entity.NewExpense(
		input.Title,
		input.Amount,
		input.Category,
		status,
		input.Description,
		ResolveDate(input.Date),
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

// ResolveDate parses a caller-supplied date string. It accepts RFC 3339
// timestamps (with a trailing "Z" or offset) and plain "YYYY-MM-DD" dates.
// Anything else, including an empty string, resolves to the current UTC time.
func ResolveDate(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
