package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newHealthTestEngine(checker func() bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", NewHealthController(checker).Check)
	return engine
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		checker func() bool
		wantDB  string
	}{
		{name: "database reachable", checker: func() bool { return true }, wantDB: "connected"},
		{name: "database unreachable", checker: func() bool { return false }, wantDB: "disconnected"},
		{name: "no checker wired", checker: nil, wantDB: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newHealthTestEngine(tt.checker)
			rec := doRequest(engine, http.MethodGet, "/health", "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}

			var body HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Status != "healthy" {
				t.Errorf("expected status healthy, got %q", body.Status)
			}
			if body.Database != tt.wantDB {
				t.Errorf("expected database %q, got %q", tt.wantDB, body.Database)
			}
			if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
				t.Errorf("expected RFC3339 timestamp, got %q", body.Timestamp)
			}
		})
	}
}
