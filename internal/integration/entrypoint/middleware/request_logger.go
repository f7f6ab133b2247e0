// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// RequestLogger returns a middleware that emits one structured log line per
// request with method, path and the request's trace ID. It does not alter
// the request or the response.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		}
		if traceID, ok := TraceIDFromContext(c.Request.Context()); ok {
			attrs = append(attrs, "trace_id", traceID)
		}
		slog.Debug("Request received", attrs...)

		c.Next()
	}
}
