package acl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/fortune-service/internal/adapters/clients"
	"github.com/jsamuelsen/fortune-service/internal/domain"
	"github.com/jsamuelsen/fortune-service/internal/platform/config"
	"github.com/jsamuelsen/fortune-service/internal/ports"
)

var _ ports.FortuneAPI = (*FortuneClient)(nil)

// setupFortuneClient creates a FortuneClient against a test HTTP server.
func setupFortuneClient(t *testing.T, handler http.HandlerFunc) *FortuneClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := clients.New(&clients.Config{
		ServiceName: ServiceName,
		BaseURL:     server.URL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     30 * time.Second,
		},
	})
	require.NoError(t, err)

	return NewFortuneClient(FortuneClientConfig{
		Client: client,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestNewFortuneClient_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewFortuneClient(FortuneClientConfig{})
	})
}

func TestFortuneClient_RandomFortune(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/fortune", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"fortune":{"id":7,"text":"You will write Go.","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}}`)
	})

	f, err := client.RandomFortune(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), f.ID)
	assert.Equal(t, "You will write Go.", f.Text)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), f.CreatedAt.UTC())
}

func TestFortuneClient_RandomFortune_NotFound(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":["No fortunes found"]}`)
	})

	_, err := client.RandomFortune(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestFortuneClient_RandomFortune_ServerError(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.RandomFortune(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestFortuneClient_RandomFortune_MalformedBody(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := client.RandomFortune(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestFortuneClient_RandomFortune_MissingFortune(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := client.RandomFortune(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestFortuneClient_CreateFortune(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Fresh fortune", body["fortune"])

		_, _ = io.WriteString(w, `{"fortune":{"id":3,"text":"Fresh fortune","created_at":"2026-01-02T03:04:05Z","updated_at":"2026-01-02T03:04:05Z"}}`)
	})

	f, err := client.CreateFortune(context.Background(), "Fresh fortune")
	require.NoError(t, err)

	assert.Equal(t, int64(3), f.ID)
	assert.Equal(t, "Fresh fortune", f.Text)
}

func TestFortuneClient_CreateFortune_Unprocessable(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"error":["Text can't be blank"]}`)
	})

	_, err := client.CreateFortune(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, []string{"Text can't be blank"}, domain.ValidationMessages(err))
}

func TestFortuneClient_CreateFortune_Forbidden(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"code":"FORBIDDEN","message":"cross-origin request rejected"},"traceId":"abc"}`)
	})

	_, err := client.CreateFortune(context.Background(), "hi")
	require.Error(t, err)
	assert.True(t, domain.IsForbidden(err))
	assert.Contains(t, err.Error(), "cross-origin request rejected")
}

func TestFortuneClient_Unreachable(t *testing.T) {
	client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {})
	client.client = mustClient(t, "http://127.0.0.1:1")

	_, err := client.RandomFortune(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestFortuneClient_HealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/-/live", r.URL.Path)
			_, _ = io.WriteString(w, `{"status":"ok"}`)
		})

		assert.Equal(t, ServiceName, client.Name())
		assert.NoError(t, client.Check(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		client := setupFortuneClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		assert.Error(t, client.Check(context.Background()))
	})
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantNil  bool
		messages []string
		code     string
		message  string
		traceID  string
	}{
		{
			name:     "messages list",
			body:     `{"error":["Text can't be blank","Text is too short"]}`,
			messages: []string{"Text can't be blank", "Text is too short"},
			message:  "Text can't be blank, Text is too short",
		},
		{
			name:    "generic envelope",
			body:    `{"error":{"code":"INTERNAL_ERROR","message":"an internal error occurred"},"traceId":"t-1"}`,
			code:    "INTERNAL_ERROR",
			message: "an internal error occurred",
			traceID: "t-1",
		},
		{name: "empty object", body: `{}`, wantNil: true},
		{name: "null error", body: `{"error":null}`, wantNil: true},
		{name: "invalid json", body: `<html>`, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseErrorResponse(strings.NewReader(tt.body))
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.messages, got.Messages)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.message, got.GetMessage())
			assert.Equal(t, tt.traceID, got.TraceID)
		})
	}
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		checkFn func(error) bool
	}{
		{"not found", http.StatusNotFound, "", domain.IsNotFound},
		{"unprocessable", http.StatusUnprocessableEntity, `{"error":["Text can't be blank"]}`, domain.IsValidation},
		{"bad request", http.StatusBadRequest, `{"error":{"code":"BAD_REQUEST","message":"bad body"}}`, domain.IsValidation},
		{"forbidden", http.StatusForbidden, "", domain.IsForbidden},
		{"service unavailable", http.StatusServiceUnavailable, "", domain.IsUnavailable},
		{"teapot", http.StatusTeapot, "", domain.IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			err := MapHTTPError(resp, nil, ServiceName, "test")
			require.Error(t, err)
			assert.True(t, tt.checkFn(err), "unexpected error: %v", err)
		})
	}

	t.Run("success is nil", func(t *testing.T) {
		assert.NoError(t, MapHTTPError(&http.Response{StatusCode: http.StatusOK}, nil, ServiceName, "test"))
	})

	t.Run("circuit open", func(t *testing.T) {
		err := MapHTTPError(nil, clients.ErrCircuitOpen, ServiceName, "get random fortune")
		assert.True(t, domain.IsUnavailable(err))
		assert.Contains(t, err.Error(), "circuit breaker open")
	})

	t.Run("nil response", func(t *testing.T) {
		assert.True(t, domain.IsUnavailable(MapHTTPError(nil, nil, ServiceName, "test")))
	})
}

func mustClient(t *testing.T, baseURL string) *clients.Client {
	t.Helper()

	c, err := clients.New(&clients.Config{
		ServiceName: ServiceName,
		BaseURL:     baseURL,
		Timeout:     time.Second,
		Retry:       config.RetryConfig{MaxAttempts: 1},
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	})
	require.NoError(t, err)

	return c
}
