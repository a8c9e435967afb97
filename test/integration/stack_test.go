//go:build integration

package integration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/fortune-service/internal/adapters/clients"
	"github.com/jsamuelsen/fortune-service/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/fortune-service/internal/adapters/http"
	"github.com/jsamuelsen/fortune-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/fortune-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/fortune-service/internal/adapters/persistence/sqlite"
	"github.com/jsamuelsen/fortune-service/internal/app"
	"github.com/jsamuelsen/fortune-service/internal/platform/config"
	"github.com/jsamuelsen/fortune-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stack is a complete fortune service on a loopback listener, backed by an
// in-memory SQLite store.
type stack struct {
	server  *httptest.Server
	store   *sqlite.Store
	service *app.FortuneService
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startStack(ctx context.Context) (*stack, error) {
	store, err := sqlite.Open(ctx, sqlite.Config{DSN: ":memory:"})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	metrics, err := app.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	service := app.NewFortuneService(app.FortuneServiceConfig{
		Repository: store,
		Logger:     discardLogger(),
		Metrics:    metrics,
	})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(store); err != nil {
		_ = store.Close()
		return nil, err
	}

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:         discardLogger(),
		ServiceName:    "fortune-service",
		HealthHandler:  handlers.NewHealthHandler(registry, handlers.NewBuildInfo("test", "none", "now"), prometheus.NewRegistry()),
		FortuneHandler: handlers.NewFortuneHandler(service),
		WebHandler:     handlers.NewWebHandler(),
		CSRF:           middleware.CSRFConfig{Enabled: true},
		Timeout:        httpadapter.DefaultRequestTimeout,
	})

	return &stack{
		server:  httptest.NewServer(engine),
		store:   store,
		service: service,
	}, nil
}

func (s *stack) close() {
	s.server.Close()
	_ = s.store.Close()
}

// fortuneClient returns the UI's API client pointed at the stack.
func (s *stack) fortuneClient() (*acl.FortuneClient, error) {
	client, err := clients.New(&clients.Config{
		ServiceName: acl.ServiceName,
		BaseURL:     s.server.URL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     config.DefaultClientRetryMaxAttempts,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Logger: discardLogger(),
	})
	if err != nil {
		return nil, err
	}

	return acl.NewFortuneClient(acl.FortuneClientConfig{Client: client, Logger: discardLogger()}), nil
}
