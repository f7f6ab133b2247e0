// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"strings"

	"github.com/pensive/backend/internal/application/adapter"
	"github.com/pensive/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Page      int
	Limit     int
	Category  string
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses   []*entity.Expense
	Pagination PaginationOutput
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.ExpenseFilter{
		Category: input.Category,
		Search:   strings.TrimSpace(input.Search),
	}
	if input.Status != "" {
		status := entity.ExpenseStatus(input.Status)
		filter.Status = &status
	}

	sort := adapter.ExpenseSort{
		Field:      resolveSortField(input.SortBy),
		Descending: !strings.EqualFold(input.SortOrder, "asc"),
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter, sort, adapter.ExpensePagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListExpensesOutput{
		Expenses: result.Expenses,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}

// resolveSortField maps a caller-supplied sort key (camelCase accepted) to a
// sortable column. Unknown keys fall back to the date column.
func resolveSortField(sortBy string) adapter.ExpenseSortField {
	switch sortBy {
	case "amount":
		return adapter.SortByAmount
	case "title":
		return adapter.SortByTitle
	case "category":
		return adapter.SortByCategory
	case "status":
		return adapter.SortByStatus
	case "createdAt", "created_at":
		return adapter.SortByCreatedAt
	case "updatedAt", "updated_at":
		return adapter.SortByUpdatedAt
	default:
		return adapter.SortByDate
	}
}
