// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/application/adapter"
	"github.com/pensive/backend/internal/domain/entity"
	domainerror "github.com/pensive/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for a partial expense update.
// Nil fields are left untouched.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	Title       *string
	Amount      *decimal.Decimal
	Category    *string
	Status      *entity.ExpenseStatus
	Description *string
	Date        *string
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles partial expense updates.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute applies the provided fields to the stored expense.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		expense.Title = *input.Title
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return nil, err
		}
		expense.Category = *input.Category
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseStatus,
				"status must be 'pending', 'completed' or 'cancelled'",
				domainerror.ErrInvalidExpenseStatus,
			)
		}
		expense.Status = *input.Status
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Date != nil {
		expense.Date = ResolveDate(*input.Date)
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
