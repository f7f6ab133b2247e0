package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pensive/backend/internal/domain/entity"
)

func decodeErrorDetail(t *testing.T, body []byte) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return resp["detail"]
}

func TestExpenseCreate(t *testing.T) {
	repo := newFakeExpenseRepository()
	engine := newExpenseTestEngine(repo)

	rec := doRequest(engine, http.MethodPost, "/api/expenses",
		`{"title":"Coffee","amount":4.5,"category":"food","date":"2024-06-01"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			ID     string  `json:"id"`
			Title  string  `json:"title"`
			Amount float64 `json:"amount"`
			Status string  `json:"status"`
			Date   string  `json:"date"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Data.ID == "" {
		t.Error("expected a generated ID")
	}
	if body.Data.Amount != 4.5 {
		t.Errorf("expected amount 4.5, got %v", body.Data.Amount)
	}
	if body.Data.Status != "pending" {
		t.Errorf("expected default status pending, got %q", body.Data.Status)
	}
	if body.Data.Date != "2024-06-01T00:00:00Z" {
		t.Errorf("expected RFC3339 date, got %q", body.Data.Date)
	}
	if len(repo.expenses) != 1 {
		t.Error("expected expense persisted")
	}
}

func TestExpenseCreateValidation(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantDetail string
	}{
		{
			name:       "malformed json",
			payload:    `{"title":`,
			wantDetail: "Invalid request body",
		},
		{
			name:       "missing title",
			payload:    `{"amount":10,"category":"food"}`,
			wantDetail: "title must be between 1 and 200 characters",
		},
		{
			name:       "non-positive amount",
			payload:    `{"title":"x","amount":0,"category":"food"}`,
			wantDetail: "amount must be greater than zero",
		},
		{
			name:       "missing category",
			payload:    `{"title":"x","amount":10}`,
			wantDetail: "category must not be empty",
		},
		{
			name:       "unknown status",
			payload:    `{"title":"x","amount":10,"category":"food","status":"archived"}`,
			wantDetail: "status must be 'pending', 'completed' or 'cancelled'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newExpenseTestEngine(newFakeExpenseRepository())
			rec := doRequest(engine, http.MethodPost, "/api/expenses", tt.payload)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if detail := decodeErrorDetail(t, rec.Body.Bytes()); detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, detail)
			}
		})
	}
}

func TestExpenseGet(t *testing.T) {
	repo := newFakeExpenseRepository()
	seeded := entity.NewExpense("Rent", decimal.RequireFromString("1200"), "housing",
		entity.ExpenseStatusPending, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	repo.expenses[seeded.ID] = seeded

	engine := newExpenseTestEngine(repo)

	rec := doRequest(engine, http.MethodGet, "/api/expenses/"+seeded.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Data.ID != seeded.ID.String() || body.Data.Title != "Rent" {
		t.Errorf("unexpected body: %+v", body.Data)
	}
}

func TestExpenseGetNotFound(t *testing.T) {
	engine := newExpenseTestEngine(newFakeExpenseRepository())

	// Unknown and malformed IDs both read as absent.
	for _, id := range []string{"0b9a07f7-d9d3-4a15-a4c1-6a0a0e4d2f01", "not-a-uuid"} {
		rec := doRequest(engine, http.MethodGet, "/api/expenses/"+id, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("id %q: expected 404, got %d", id, rec.Code)
		}
		if detail := decodeErrorDetail(t, rec.Body.Bytes()); detail != "Expense not found" {
			t.Errorf("id %q: unexpected detail %q", id, detail)
		}
	}
}

func TestExpenseUpdate(t *testing.T) {
	repo := newFakeExpenseRepository()
	seeded := entity.NewExpense("Rent", decimal.RequireFromString("1200"), "housing",
		entity.ExpenseStatusPending, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	repo.expenses[seeded.ID] = seeded

	engine := newExpenseTestEngine(repo)

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		rec := doRequest(engine, method, "/api/expenses/"+seeded.ID.String(),
			`{"status":"completed"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", method, rec.Code, rec.Body.String())
		}
	}

	stored := repo.expenses[seeded.ID]
	if stored.Status != entity.ExpenseStatusCompleted {
		t.Errorf("expected persisted status completed, got %s", stored.Status)
	}
	if stored.Title != "Rent" {
		t.Errorf("untouched field changed: %q", stored.Title)
	}
}

func TestExpenseUpdateNotFound(t *testing.T) {
	engine := newExpenseTestEngine(newFakeExpenseRepository())

	rec := doRequest(engine, http.MethodPut,
		"/api/expenses/0b9a07f7-d9d3-4a15-a4c1-6a0a0e4d2f01", `{"title":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestExpenseDeleteIdempotent(t *testing.T) {
	repo := newFakeExpenseRepository()
	seeded := entity.NewExpense("Rent", decimal.RequireFromString("1200"), "housing",
		entity.ExpenseStatusPending, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	repo.expenses[seeded.ID] = seeded

	engine := newExpenseTestEngine(repo)

	// Existing, absent and malformed IDs all report success.
	for _, id := range []string{seeded.ID.String(), seeded.ID.String(), "not-a-uuid"} {
		rec := doRequest(engine, http.MethodDelete, "/api/expenses/"+id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("id %q: expected 200, got %d", id, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["message"] != "Expense deleted successfully" {
			t.Errorf("unexpected message %q", body["message"])
		}
	}
	if len(repo.expenses) != 0 {
		t.Error("expected expense removed")
	}
}

func TestExpenseListPaginationValidation(t *testing.T) {
	tests := []struct {
		query      string
		wantDetail string
	}{
		{"page=0", "page must be a positive integer"},
		{"page=abc", "page must be a positive integer"},
		{"limit=0", "limit must be an integer between 1 and 100"},
		{"limit=101", "limit must be an integer between 1 and 100"},
		{"limit=abc", "limit must be an integer between 1 and 100"},
	}

	engine := newExpenseTestEngine(newFakeExpenseRepository())

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := doRequest(engine, http.MethodGet, "/api/expenses?"+tt.query, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if detail := decodeErrorDetail(t, rec.Body.Bytes()); detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, detail)
			}
		})
	}
}

func TestExpenseListEnvelope(t *testing.T) {
	repo := newFakeExpenseRepository()
	seeded := entity.NewExpense("Rent", decimal.RequireFromString("1200"), "housing",
		entity.ExpenseStatusPending, "", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	repo.expenses[seeded.ID] = seeded

	engine := newExpenseTestEngine(repo)
	rec := doRequest(engine, http.MethodGet, "/api/expenses", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Data) != 1 {
		t.Errorf("expected 1 expense, got %d", len(body.Data))
	}
	if body.Pagination.Page != 1 || body.Pagination.Limit != 20 || body.Pagination.Total != 1 {
		t.Errorf("unexpected pagination: %+v", body.Pagination)
	}
}
