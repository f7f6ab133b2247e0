// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pensive/backend/internal/domain/entity"
)

// ExpenseSortField identifies a sortable expense column.
type ExpenseSortField string

const (
	SortByDate      ExpenseSortField = "date"
	SortByAmount    ExpenseSortField = "amount"
	SortByTitle     ExpenseSortField = "title"
	SortByCategory  ExpenseSortField = "category"
	SortByStatus    ExpenseSortField = "status"
	SortByCreatedAt ExpenseSortField = "created_at"
	SortByUpdatedAt ExpenseSortField = "updated_at"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	Category string
	Status   *entity.ExpenseStatus
	Search   string // Case-insensitive title match
}

// ExpenseSort defines ordering options for listing expenses.
type ExpenseSort struct {
	Field      ExpenseSortField
	Descending bool
}

// ExpensePagination defines pagination options.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter ExpenseFilter, sort ExpenseSort, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// FindByDateWindow retrieves all expenses whose date falls in [start, end),
	// ordered by date ascending. A nil start and end means no date filter.
	FindByDateWindow(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database. Deleting an unknown ID is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
