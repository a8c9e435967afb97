package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/fortune-service/internal/platform/logging"
)

const (
	// HeaderCorrelationID is the header name for correlation ID. It stays
	// the same across every request a UI session makes.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates X-Correlation-ID,
// generating one when the caller did not send it.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		enrichers:  []contextEnricher{logging.WithCorrelationID, ContextWithCorrelationID},
	})
}

// GetCorrelationID extracts the correlation ID from the gin.Context.
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
