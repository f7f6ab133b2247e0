// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/application/usecase/dashboard"
)

// DashboardResponse wraps the computed aggregates under the data envelope.
type DashboardResponse struct {
	Data DashboardData `json:"data"`
}

// DashboardData is the aggregate payload consumed by the dashboard charts.
type DashboardData struct {
	Summary       SummaryResponse         `json:"summary"`
	StatusData    []StatusDatumResponse   `json:"statusData"`
	CategoryData  []CategoryDatumResponse `json:"categoryData"`
	MonthlyTrend  []MonthlyPointResponse  `json:"monthlyTrend"`
	TopCategories []TopCategoryResponse   `json:"topCategories"`
}

// SummaryResponse carries the scalar totals.
type SummaryResponse struct {
	TotalExpenses   int     `json:"totalExpenses"`
	TotalAmount     float64 `json:"totalAmount"`
	CompletedAmount float64 `json:"completedAmount"`
	PendingAmount   float64 `json:"pendingAmount"`
	AverageExpense  float64 `json:"averageExpense"`
}

// StatusDatumResponse is one per-status breakdown entry.
type StatusDatumResponse struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// CategoryDatumResponse is one per-category entry, shaped for pie/bar charts.
type CategoryDatumResponse struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Value  int     `json:"value"`
	Amount float64 `json:"amount"`
}

// MonthlyPointResponse is one month in the trend series, shaped for line charts.
type MonthlyPointResponse struct {
	X     string  `json:"x"`
	Y     float64 `json:"y"`
	Count int     `json:"count"`
}

// TopCategoryResponse is one entry of the top-categories ranking.
type TopCategoryResponse struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// ToDashboardResponse converts a GetAggregatesOutput to its wire
// representation. Currency figures are rounded to 2 decimal places here and
// nowhere earlier, so accumulation keeps full precision.
func ToDashboardResponse(output *dashboard.GetAggregatesOutput) DashboardResponse {
	statusData := make([]StatusDatumResponse, len(output.StatusData))
	for i, s := range output.StatusData {
		statusData[i] = StatusDatumResponse{
			Status: s.Status,
			Count:  s.Count,
			Amount: round2(s.Amount),
		}
	}

	categoryData := make([]CategoryDatumResponse, len(output.CategoryData))
	for i, c := range output.CategoryData {
		categoryData[i] = CategoryDatumResponse{
			ID:     c.Category,
			Label:  c.Category,
			Value:  c.Count,
			Amount: round2(c.Amount),
		}
	}

	monthlyTrend := make([]MonthlyPointResponse, len(output.MonthlyTrend))
	for i, m := range output.MonthlyTrend {
		monthlyTrend[i] = MonthlyPointResponse{
			X:     m.Month,
			Y:     round2(m.Amount),
			Count: m.Count,
		}
	}

	topCategories := make([]TopCategoryResponse, len(output.TopCategories))
	for i, c := range output.TopCategories {
		topCategories[i] = TopCategoryResponse{
			Category: c.Category,
			Amount:   round2(c.Amount),
			Count:    c.Count,
		}
	}

	return DashboardResponse{
		Data: DashboardData{
			Summary: SummaryResponse{
				TotalExpenses:   output.Summary.TotalExpenses,
				TotalAmount:     round2(output.Summary.TotalAmount),
				CompletedAmount: round2(output.Summary.CompletedAmount),
				PendingAmount:   round2(output.Summary.PendingAmount),
				AverageExpense:  round2(output.Summary.AverageExpense),
			},
			StatusData:    statusData,
			CategoryData:  categoryData,
			MonthlyTrend:  monthlyTrend,
			TopCategories: topCategories,
		},
	}
}

func round2(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}
