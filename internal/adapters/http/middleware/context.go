// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import "context"

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// RequestIDFromContext returns the request ID stored by the RequestID
// middleware, or "" when there is none.
func RequestIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, requestIDKey{})
}

// CorrelationIDFromContext returns the correlation ID stored by the
// CorrelationID middleware, or "" when there is none.
func CorrelationIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, correlationIDKey{})
}

// ContextWithRequestID stores a request ID in the context. The UI client
// forwards it as X-Request-ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// ContextWithCorrelationID stores a correlation ID in the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func stringFromContext(ctx context.Context, key any) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
