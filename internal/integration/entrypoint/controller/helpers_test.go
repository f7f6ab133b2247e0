package controller

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pensive/backend/internal/application/adapter"
	"github.com/pensive/backend/internal/application/usecase/dashboard"
	"github.com/pensive/backend/internal/application/usecase/expense"
	"github.com/pensive/backend/internal/domain/entity"
	domainerror "github.com/pensive/backend/internal/domain/error"
)

// fakeExpenseRepository is a minimal in-memory adapter.ExpenseRepository
// for handler tests.
type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense
	failWith error
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(ctx context.Context, e *entity.Expense) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, sortBy adapter.ExpenseSort, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	all := r.sorted()
	return &entity.ExpenseListResult{
		Expenses:   all,
		Total:      int64(len(all)),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *fakeExpenseRepository) FindByDateWindow(ctx context.Context, start, end *time.Time) ([]*entity.Expense, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	matched := make([]*entity.Expense, 0, len(r.expenses))
	for _, e := range r.sorted() {
		if start != nil && e.Date.Before(*start) {
			continue
		}
		if end != nil && !e.Date.Before(*end) {
			continue
		}
		matched = append(matched, e)
	}
	return matched, nil
}

func (r *fakeExpenseRepository) Update(ctx context.Context, e *entity.Expense) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.expenses[e.ID] = e
	return nil
}

func (r *fakeExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepository) sorted() []*entity.Expense {
	all := make([]*entity.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	return all
}

// newExpenseTestEngine wires the expense routes against the given repository.
func newExpenseTestEngine(repo adapter.ExpenseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewExpenseController(
		expense.NewListExpensesUseCase(repo),
		expense.NewGetExpenseUseCase(repo),
		expense.NewCreateExpenseUseCase(repo),
		expense.NewUpdateExpenseUseCase(repo),
		expense.NewDeleteExpenseUseCase(repo),
	)

	engine := gin.New()
	engine.GET("/api/expenses", ctrl.List)
	engine.POST("/api/expenses", ctrl.Create)
	engine.GET("/api/expenses/:id", ctrl.Get)
	engine.PUT("/api/expenses/:id", ctrl.Update)
	engine.PATCH("/api/expenses/:id", ctrl.Update)
	engine.DELETE("/api/expenses/:id", ctrl.Delete)
	return engine
}

// newDashboardTestEngine wires the dashboard route against the given repository.
func newDashboardTestEngine(repo adapter.ExpenseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewDashboardController(dashboard.NewGetAggregatesUseCase(repo))

	engine := gin.New()
	engine.GET("/api/dashboard", ctrl.Get)
	return engine
}

// closeNotifyRecorder adds the http.CloseNotifier method gin's Stream
// requires, which httptest.ResponseRecorder does not implement.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return make(chan bool) }

func doRequest(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(&closeNotifyRecorder{rec}, req)
	return rec
}
