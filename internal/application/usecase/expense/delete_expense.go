// Package expense contains expense-related use cases.
package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/pensive/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion. Deletion is idempotent:
// deleting an unknown ID succeeds.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes the expense by ID.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	return uc.expenseRepo.Delete(ctx, input.ExpenseID)
}
