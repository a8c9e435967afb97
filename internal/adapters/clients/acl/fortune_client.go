// Package acl translates the fortune API's wire format into domain types,
// so the UI never sees HTTP or JSON.
package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen/fortune-service/internal/adapters/clients"
	"github.com/jsamuelsen/fortune-service/internal/domain"
	"github.com/jsamuelsen/fortune-service/internal/platform/logging"
)

const (
	// ServiceName identifies the fortune API in errors and health checks.
	ServiceName = "fortune-api"

	fortunePath = "/api/fortune"
	livePath    = "/-/live"
)

// FortuneClientConfig contains configuration for the fortune client.
type FortuneClientConfig struct {
	// Client is the HTTP client; its BaseURL points at the fortune service.
	Client *clients.Client

	// Logger is the structured logger.
	Logger *slog.Logger
}

// FortuneClient implements ports.FortuneAPI over HTTP.
type FortuneClient struct {
	client *clients.Client
	logger *slog.Logger
}

// NewFortuneClient creates a new fortune client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewFortuneClient(cfg FortuneClientConfig) *FortuneClient {
	if cfg.Client == nil {
		panic("FortuneClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FortuneClient{
		client: cfg.Client,
		logger: logger,
	}
}

// fortuneEnvelope is the API's {"fortune": {...}} payload.
type fortuneEnvelope struct {
	Fortune *fortunePayload `json:"fortune"`
}

type fortunePayload struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createRequest struct {
	Fortune string `json:"fortune"`
}

// RandomFortune calls GET /api/fortune.
// Implements ports.FortuneAPI.
func (c *FortuneClient) RandomFortune(ctx context.Context) (*domain.Fortune, error) {
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", fortunePath))

	resp, err := c.client.Get(ctx, fortunePath)
	if err != nil {
		return nil, MapHTTPError(nil, err, ServiceName, "get random fortune")
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleResponse(ctx, resp, "get random fortune")
}

// CreateFortune calls POST /api/fortune with {"fortune": text}.
// Implements ports.FortuneAPI.
func (c *FortuneClient) CreateFortune(ctx context.Context, text string) (*domain.Fortune, error) {
	body, err := json.Marshal(createRequest{Fortune: text})
	if err != nil {
		return nil, fmt.Errorf("encoding create request: %w", err)
	}

	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", fortunePath),
		slog.Int("text_length", len(text)))

	resp, err := c.client.Post(ctx, fortunePath, bytes.NewReader(body))
	if err != nil {
		return nil, MapHTTPError(nil, err, ServiceName, "create fortune")
	}
	defer func() { _ = resp.Body.Close() }()

	return c.handleResponse(ctx, resp, "create fortune")
}

func (c *FortuneClient) handleResponse(ctx context.Context, resp *http.Response, operation string) (*domain.Fortune, error) {
	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		mapped := MapHTTPError(resp, nil, ServiceName, operation)
		c.logger.DebugContext(ctx, "fortune API error",
			slog.String("operation", operation),
			slog.Int("status_code", resp.StatusCode),
			slog.Any("error", mapped))

		return nil, mapped
	}

	return c.parseFortune(resp.Body)
}

// parseFortune decodes the envelope and translates it to a domain Fortune.
func (c *FortuneClient) parseFortune(body io.Reader) (*domain.Fortune, error) {
	var env fortuneEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, domain.NewUnavailableError(ServiceName, fmt.Sprintf("decoding fortune response: %v", err))
	}

	if env.Fortune == nil {
		return nil, domain.NewUnavailableError(ServiceName, "response has no fortune")
	}

	return &domain.Fortune{
		ID:        env.Fortune.ID,
		Text:      env.Fortune.Text,
		CreatedAt: env.Fortune.CreatedAt,
		UpdatedAt: env.Fortune.UpdatedAt,
	}, nil
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *FortuneClient) Name() string {
	return ServiceName
}

// Check calls the service's liveness endpoint.
// Implements ports.HealthChecker.
func (c *FortuneClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, livePath)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fortune API returned status %d", resp.StatusCode)
	}

	return nil
}
