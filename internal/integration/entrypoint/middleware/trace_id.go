// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceIDHeader is the correlation header read from requests and echoed on
// every response.
const TraceIDHeader = "x-trace-id"

// traceIDContextKey is the context key type for the request trace ID.
type traceIDContextKey struct{}

// TraceID returns a middleware that stamps every request with a correlation
// identifier: the inbound header value when present, otherwise a fresh UUID.
// The identifier is stored in the request context and echoed on the response.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		ctx := context.WithValue(c.Request.Context(), traceIDContextKey{}, traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)

		c.Next()
	}
}

// TraceIDFromContext returns the trace ID stored in the context, if any.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDContextKey{}).(string)
	return traceID, ok
}
