package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/fortune-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/fortune-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/fortune-service/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is stored in every request context.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// HealthHandler serves /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// FortuneHandler serves /api/fortune.
	FortuneHandler *handlers.FortuneHandler

	// WebHandler serves the browser UI at /. Optional.
	WebHandler *handlers.WebHandler

	// CSRF configures the origin check on the API.
	CSRF middleware.CSRFConfig

	// Timeout is the API request deadline. Zero disables it.
	Timeout time.Duration
}

// Route is one entry of the API route table.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// APIRoutes is the complete API route table, relative to /api.
func APIRoutes(h *handlers.FortuneHandler) []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/fortune", Handler: h.GetRandomFortune},
		{Method: http.MethodPost, Path: "/fortune", Handler: h.CreateFortune},
	}
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Global middleware, first to last:
//  1. Recovery
//  2. Context logger, request ID, correlation ID
//  3. OpenTelemetry tracing and metrics
//  4. Request logging (skips /-/)
//
// The /api group adds the CSRF check and the request timeout.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging("/fortune.js"),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.WebHandler != nil {
		cfg.WebHandler.RegisterWebRoutes(engine)
	}

	api := engine.Group("/api")
	api.Use(middleware.CSRF(cfg.CSRF))

	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.FortuneHandler != nil {
		for _, r := range APIRoutes(cfg.FortuneHandler) {
			api.Handle(r.Method, r.Path, r.Handler)
		}
	}
}
