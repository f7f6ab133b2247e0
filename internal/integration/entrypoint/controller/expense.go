// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/application/usecase/expense"
	"github.com/pensive/backend/internal/domain/entity"
	domainerror "github.com/pensive/backend/internal/domain/error"
	"github.com/pensive/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	listUseCase   *expense.ListExpensesUseCase
	getUseCase    *expense.GetExpenseUseCase
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{
		Page:      1,
		Limit:     20,
		Category:  ctx.Query("category"),
		Status:    ctx.Query("status"),
		Search:    ctx.Query("search"),
		SortBy:    ctx.DefaultQuery("sortBy", "date"),
		SortOrder: ctx.DefaultQuery("sortOrder", "desc"),
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "page must be a positive integer",
			})
			return
		}
		input.Page = page
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Detail: "limit must be an integer between 1 and 100",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Detail: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Get handles GET /api/expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	// A malformed ID cannot match any stored expense, so it reads as absent.
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Expense not found"})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{
		ExpenseID: expenseID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseDataResponse{Data: dto.ToExpenseResponse(output.Expense)})
}

// Create handles POST /api/expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	input := expense.CreateExpenseInput{
		Title:       req.Title,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Status:      entity.ExpenseStatus(req.Status),
		Description: req.Description,
		Date:        req.Date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ExpenseDataResponse{Data: dto.ToExpenseResponse(output.Expense)})
}

// Update handles PUT and PATCH /api/expenses/:id requests. Both verbs carry
// the same partial-update semantics.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Expense not found"})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "Invalid request body"})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Status != nil {
		status := entity.ExpenseStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseDataResponse{Data: dto.ToExpenseResponse(output.Expense)})
}

// Delete handles DELETE /api/expenses/:id requests. Deletion is idempotent:
// unknown and malformed IDs succeed.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if expenseID, err := uuid.Parse(ctx.Param("id")); err == nil {
		if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
			ExpenseID: expenseID,
		}); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Detail: "Failed to delete expense",
			})
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}

// handleExpenseError maps domain errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrExpenseNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Expense not found"})
		return
	}

	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: expenseErr.Message})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Internal server error"})
}
