// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/application/adapter"
	"github.com/pensive/backend/internal/domain/entity"
)

// GetAggregatesInput represents the input for the dashboard aggregation.
type GetAggregatesInput struct {
	Filter DateFilter
}

// SummaryOutput holds the scalar totals of the aggregation.
type SummaryOutput struct {
	TotalExpenses   int
	TotalAmount     decimal.Decimal
	CompletedAmount decimal.Decimal
	PendingAmount   decimal.Decimal
	AverageExpense  decimal.Decimal
}

// StatusDatum is the per-status breakdown entry. Status carries the
// human-capitalized label; grouping itself uses the raw stored value.
type StatusDatum struct {
	Status string
	Count  int
	Amount decimal.Decimal
}

// CategoryDatum is the per-category breakdown entry. Category casing is
// left exactly as stored.
type CategoryDatum struct {
	Category string
	Count    int
	Amount   decimal.Decimal
}

// MonthlyPoint is one month in the trend series, keyed "YYYY-MM".
type MonthlyPoint struct {
	Month  string
	Count  int
	Amount decimal.Decimal
}

// GetAggregatesOutput represents the computed dashboard aggregates.
type GetAggregatesOutput struct {
	Summary       SummaryOutput
	StatusData    []StatusDatum
	CategoryData  []CategoryDatum
	MonthlyTrend  []MonthlyPoint
	TopCategories []CategoryDatum
}

// topCategoryLimit caps the topCategories list.
const topCategoryLimit = 5

// GetAggregatesUseCase computes summary statistics over the expenses that
// match an optional date filter. The result is rebuilt from the matching
// rows on every call; nothing is cached.
type GetAggregatesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetAggregatesUseCase creates a new GetAggregatesUseCase instance.
func NewGetAggregatesUseCase(expenseRepo adapter.ExpenseRepository) *GetAggregatesUseCase {
	return &GetAggregatesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the matching expenses and aggregates them in one pass.
func (uc *GetAggregatesUseCase) Execute(ctx context.Context, input GetAggregatesInput) (*GetAggregatesOutput, error) {
	start, end := input.Filter.Window()

	expenses, err := uc.expenseRepo.FindByDateWindow(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for dashboard: %w", err)
	}

	totalAmount := decimal.Zero
	byStatus := newGroupAccumulator()
	byCategory := newGroupAccumulator()
	byMonth := newGroupAccumulator()

	for _, e := range expenses {
		totalAmount = totalAmount.Add(e.Amount)
		byStatus.Add(string(e.Status), e.Amount)
		byCategory.Add(e.Category, e.Amount)
		// Rows without a usable date stay in the totals and the status and
		// category breakdowns but are left out of the monthly trend.
		if !e.Date.IsZero() {
			byMonth.Add(e.Date.Format("2006-01"), e.Amount)
		}
	}

	totalCount := len(expenses)
	average := decimal.Zero
	if totalCount > 0 {
		average = totalAmount.Div(decimal.NewFromInt(int64(totalCount)))
	}

	statusData := make([]StatusDatum, 0, byStatus.Len())
	for _, key := range byStatus.Keys() {
		b := byStatus.Get(key)
		statusData = append(statusData, StatusDatum{
			Status: capitalize(key),
			Count:  b.Count,
			Amount: b.Amount,
		})
	}

	categoryData := make([]CategoryDatum, 0, byCategory.Len())
	for _, key := range byCategory.Keys() {
		b := byCategory.Get(key)
		categoryData = append(categoryData, CategoryDatum{
			Category: key,
			Count:    b.Count,
			Amount:   b.Amount,
		})
	}

	monthlyTrend := make([]MonthlyPoint, 0, byMonth.Len())
	monthKeys := append([]string(nil), byMonth.Keys()...)
	// Zero-padded "YYYY-MM" keys sort lexicographically into chronological order.
	sort.Strings(monthKeys)
	for _, key := range monthKeys {
		b := byMonth.Get(key)
		monthlyTrend = append(monthlyTrend, MonthlyPoint{
			Month:  key,
			Count:  b.Count,
			Amount: b.Amount,
		})
	}

	topCategories := append([]CategoryDatum(nil), categoryData...)
	sort.SliceStable(topCategories, func(i, j int) bool {
		return topCategories[i].Amount.GreaterThan(topCategories[j].Amount)
	})
	if len(topCategories) > topCategoryLimit {
		topCategories = topCategories[:topCategoryLimit]
	}

	return &GetAggregatesOutput{
		Summary: SummaryOutput{
			TotalExpenses:   totalCount,
			TotalAmount:     totalAmount,
			CompletedAmount: byStatus.Get(string(entity.ExpenseStatusCompleted)).Amount,
			PendingAmount:   byStatus.Get(string(entity.ExpenseStatusPending)).Amount,
			AverageExpense:  average,
		},
		StatusData:    statusData,
		CategoryData:  categoryData,
		MonthlyTrend:  monthlyTrend,
		TopCategories: topCategories,
	}, nil
}

// capitalize upper-cases the first letter of a raw status value for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
