// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus represents the lifecycle state of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPending   ExpenseStatus = "pending"
	ExpenseStatusCompleted ExpenseStatus = "completed"
	ExpenseStatusCancelled ExpenseStatus = "cancelled"
)

// IsValid reports whether the status is one of the known enumeration values.
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusPending, ExpenseStatusCompleted, ExpenseStatusCancelled:
		return true
	}
	return false
}

// MaxTitleLength is the maximum allowed length for expense titles.
const MaxTitleLength = 200

// Expense represents a single recorded financial transaction.
type Expense struct {
	ID          uuid.UUID
	Title       string
	Amount      decimal.Decimal
	Category    string
	Status      ExpenseStatus
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity with a fresh ID and timestamps.
func NewExpense(
	title string,
	amount decimal.Decimal,
	category string,
	status ExpenseStatus,
	description string,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Title:       title,
		Amount:      amount,
		Category:    category,
		Status:      status,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
