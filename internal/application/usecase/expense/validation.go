// Package expense contains expense-related use cases.
package expense

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/domain/entity"
	domainerror "github.com/pensive/backend/internal/domain/error"
)

func validateTitle(title string) error {
	if title == "" || len(title) > entity.MaxTitleLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseTitle,
			fmt.Sprintf("title must be between 1 and %d characters", entity.MaxTitleLength),
			domainerror.ErrInvalidExpenseTitle,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category must not be empty",
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	return nil
}
