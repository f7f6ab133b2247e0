// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pensive/backend/internal/application/usecase/stock"
	"github.com/pensive/backend/internal/integration/entrypoint/dto"
)

// StockController handles stock quote endpoints.
type StockController struct {
	listUseCase *stock.ListStocksUseCase
}

// NewStockController creates a new stock controller instance.
func NewStockController(listUseCase *stock.ListStocksUseCase) *StockController {
	return &StockController{
		listUseCase: listUseCase,
	}
}

// List handles GET /api/stocks requests. Upstream feed failures are never
// surfaced; the use case substitutes fallback data instead.
func (c *StockController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: "Failed to retrieve stock quotes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockListResponse(output))
}
