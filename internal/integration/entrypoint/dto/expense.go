// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pensive/backend/internal/application/usecase/expense"
	"github.com/pensive/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the body for creating an expense.
type CreateExpenseRequest struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// UpdateExpenseRequest represents the body for a partial expense update.
// Absent fields are left untouched.
type UpdateExpenseRequest struct {
	Title       *string  `json:"title"`
	Amount      *float64 `json:"amount"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

// ExpenseResponse represents a single expense on the wire (camelCase,
// ISO-8601 timestamps).
type ExpenseResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ExpenseDataResponse wraps a single expense under the data envelope.
type ExpenseDataResponse struct {
	Data ExpenseResponse `json:"data"`
}

// ExpenseListResponse wraps an expense page with pagination metadata.
type ExpenseListResponse struct {
	Data       []ExpenseResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts a domain Expense to its wire representation.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Amount:      e.Amount.Round(2).InexactFloat64(),
		Category:    e.Category,
		Status:      string(e.Status),
		Description: e.Description,
		Date:        e.Date.UTC().Format(time.RFC3339),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToExpenseListResponse converts a list output to its wire representation.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	items := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Data: items,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
