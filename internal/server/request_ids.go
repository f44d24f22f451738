package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header names carrying request correlation IDs.
const (
	HeaderRequestID = "X-Request-Id"
	HeaderTraceID   = "X-Trace-Id"
)

type contextKey string

const (
	requestIDKey contextKey = "requestID"
	traceIDKey   contextKey = "traceID"
)

// ensureRequestIDs fills in missing request and trace IDs and stores both in
// the request context. The trace ID defaults to the request ID.
func ensureRequestIDs(r *http.Request) (*http.Request, string, string) {
	requestID := r.Header.Get(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
		r.Header.Set(HeaderRequestID, requestID)
	}

	traceID := r.Header.Get(HeaderTraceID)
	if traceID == "" {
		traceID = requestID
		r.Header.Set(HeaderTraceID, traceID)
	}

	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	ctx = context.WithValue(ctx, traceIDKey, traceID)

	return r.WithContext(ctx), requestID, traceID
}

// RequestIDFromContext returns the request ID set by the server middleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// TraceIDFromContext returns the trace ID set by the server middleware.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}
