package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func traceTestRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var seenInContext string
	engine := gin.New()
	engine.Use(TraceID())
	engine.GET("/ping", func(c *gin.Context) {
		if traceID, ok := TraceIDFromContext(c.Request.Context()); ok {
			seenInContext = traceID
		}
		c.Status(http.StatusOK)
	})
	return engine, &seenInContext
}

func TestTraceIDEchoesInboundHeader(t *testing.T) {
	engine, seen := traceTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if got := rec.Header().Get(TraceIDHeader); got != "client-supplied-id" {
		t.Errorf("expected inbound trace ID echoed, got %q", got)
	}
	if *seen != "client-supplied-id" {
		t.Errorf("expected trace ID in request context, got %q", *seen)
	}
}

func TestTraceIDGeneratesWhenMissing(t *testing.T) {
	engine, seen := traceTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	got := rec.Header().Get(TraceIDHeader)
	if got == "" {
		t.Fatal("expected a generated trace ID on the response")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("expected a UUID trace ID, got %q", got)
	}
	if *seen != got {
		t.Errorf("context trace ID %q does not match response header %q", *seen, got)
	}
}

func TestTraceIDVariesPerRequest(t *testing.T) {
	engine, _ := traceTestRouter()

	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		ids[rec.Header().Get(TraceIDHeader)] = struct{}{}
	}
	if len(ids) != 3 {
		t.Errorf("expected distinct generated trace IDs, got %d unique of 3", len(ids))
	}
}

func TestTraceIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if _, ok := TraceIDFromContext(req.Context()); ok {
		t.Error("expected no trace ID on a bare context")
	}
}
