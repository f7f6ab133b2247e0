// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pensive/backend/internal/application/usecase/dashboard"
	"github.com/pensive/backend/internal/integration/entrypoint/dto"
)

// Year bounds accepted by the dashboard filter.
const (
	minDashboardYear = 1900
	maxDashboardYear = 2100
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getAggregatesUseCase *dashboard.GetAggregatesUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getAggregatesUseCase *dashboard.GetAggregatesUseCase) *DashboardController {
	return &DashboardController{
		getAggregatesUseCase: getAggregatesUseCase,
	}
}

// Get handles GET /api/dashboard requests. The date filter accepts either a
// year (optionally with a month) or an explicit inclusive date range; the
// combinations are validated here so invalid filters never reach the engine.
func (c *DashboardController) Get(ctx *gin.Context) {
	filter, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	output, err := c.getAggregatesUseCase.Execute(ctx.Request.Context(), dashboard.GetAggregatesInput{
		Filter: filter,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: "Failed to compute dashboard aggregates",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// parseFilter validates the query parameters and builds the date filter.
// On failure it writes a 400 response and returns ok=false.
func (c *DashboardController) parseFilter(ctx *gin.Context) (dashboard.DateFilter, bool) {
	var filter dashboard.DateFilter

	dateFromStr := ctx.Query("date_from")
	dateToStr := ctx.Query("date_to")
	if dateFromStr != "" || dateToStr != "" {
		if dateFromStr == "" || dateToStr == "" {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "Both date_from and date_to are required when using a custom date range.",
			})
			return filter, false
		}
		dateFrom, err := parseDay(dateFromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "Invalid date_from. Use YYYY-MM-DD.",
			})
			return filter, false
		}
		dateTo, err := parseDay(dateToStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "Invalid date_to. Use YYYY-MM-DD.",
			})
			return filter, false
		}
		if dateFrom.After(dateTo) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "date_from must be on or before date_to.",
			})
			return filter, false
		}
		filter.DateFrom = &dateFrom
		filter.DateTo = &dateTo
		return filter, true
	}

	var year, month *int
	if yearStr := ctx.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < minDashboardYear || y > maxDashboardYear {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "year must be an integer between 1900 and 2100",
			})
			return filter, false
		}
		year = &y
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "month must be an integer between 1 and 12",
			})
			return filter, false
		}
		month = &m
	}

	if month != nil && year == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Detail: "Month filter requires a year. Please select a year.",
		})
		return filter, false
	}

	filter.Year = year
	filter.Month = month
	return filter, true
}

// parseDay parses the leading YYYY-MM-DD of a date string as a UTC day.
func parseDay(s string) (time.Time, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	return time.Parse("2006-01-02", s)
}
