package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	return c, w
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeValidation, http.StatusUnprocessableEntity},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeForbidden, http.StatusForbidden},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeTooLarge, http.StatusRequestEntityTooLarge},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestGetTraceID(t *testing.T) {
	tests := []struct {
		name         string
		setupContext func(*gin.Context)
		want         string
	}{
		{
			name:         "trace ID in context",
			setupContext: func(c *gin.Context) { c.Set("trace_id", "context-trace-123") },
			want:         "context-trace-123",
		},
		{
			name:         "request ID header fallback",
			setupContext: func(c *gin.Context) { c.Request.Header.Set("X-Request-ID", "header-456") },
			want:         "header-456",
		},
		{
			name: "context takes precedence",
			setupContext: func(c *gin.Context) {
				c.Set("trace_id", "context-trace-123")
				c.Request.Header.Set("X-Request-ID", "header-456")
			},
			want: "context-trace-123",
		},
		{
			name:         "nothing set",
			setupContext: func(*gin.Context) {},
			want:         "",
		},
		{
			name:         "wrong type in context",
			setupContext: func(c *gin.Context) { c.Set("trace_id", 12345) },
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			tt.setupContext(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"not found", domain.NewNotFoundError("fortune", ""), http.StatusNotFound, ErrorCodeNotFound, "fortune not found"},
		{"validation", domain.NewValidationError("text", domain.MsgTextBlank), http.StatusUnprocessableEntity, ErrorCodeValidation, "validation failed"},
		{"forbidden", domain.NewForbiddenError("create fortune", "origin mismatch"), http.StatusForbidden, ErrorCodeForbidden, "origin mismatch"},
		{"unavailable", domain.NewUnavailableError("sqlite", "database is locked"), http.StatusServiceUnavailable, ErrorCodeUnavailable, "temporarily unavailable"},
		{"internal", errors.New("disk I/O error at /var/lib/fortunes.db"), http.StatusInternalServerError, ErrorCodeInternal, "internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			c.Set("trace_id", "trace-"+tt.name)

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Contains(t, resp.Error.Message, tt.wantMessage)
			assert.Equal(t, "trace-"+tt.name, resp.TraceID)
			assert.NotContains(t, w.Body.String(), "/var/lib")
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	c, w := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	HandleError(c, domain.NewValidationError("text", domain.MsgTextBlank))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Text can't be blank"}, resp.Error.Details)
}

func TestAbortWithCode(t *testing.T) {
	c, w := newContext(httptest.NewRequest(http.MethodPost, "/", nil))

	AbortWithCode(c, ErrorCodeForbidden, "origin not allowed")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "origin not allowed")
}

func TestNewFortuneResponse(t *testing.T) {
	at := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	resp := NewFortuneResponse(&domain.Fortune{ID: 3, Text: "Hi", CreatedAt: at, UpdatedAt: at})

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fortune":{"id":3,"text":"Hi","created_at":"2026-05-01T09:00:00Z","updated_at":"2026-05-01T09:00:00Z"}}`, string(b))
}

func TestNewMessagesResponse(t *testing.T) {
	b, err := json.Marshal(NewMessagesResponse(MsgNoFortunes))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":["No fortunes found"]}`, string(b))

	b, err = json.Marshal(NewMessagesResponse())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":[]}`, string(b))
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantText    string
		wantErr     string
		wantBinding bool
	}{
		{"json", "application/json", `{"fortune":"Hi"}`, "Hi", "", false},
		{"form", "application/x-www-form-urlencoded", "fortune=Good+luck", "Good luck", "", false},
		{"blank json", "application/json", `{"fortune":"   "}`, "", "Text can't be blank", false},
		{"missing field", "application/json", `{}`, "", "Text can't be blank", false},
		{"empty body", "application/json", "", "", "Text can't be blank", false},
		{"json api suffix", "application/vnd.api+json", `{"fortune":"Seize the day"}`, "Seize the day", "", false},
		{"merge patch suffix", "application/merge-patch+json; charset=utf-8", `{"fortune":"Seize the day"}`, "Seize the day", "", false},
		{"wrong type", "application/json", `{"fortune":5}`, "", "", true},
		{"malformed", "application/json", `{"fortune":`, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/fortune", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			c, _ := newContext(req)

			var body CreateFortuneRequest
			err := BindAndValidate(c, &body)

			switch {
			case tt.wantBinding:
				require.Error(t, err)
				assert.True(t, IsBindingError(err))
			case tt.wantErr != "":
				require.ErrorIs(t, err, domain.ErrValidation)
				assert.Equal(t, []string{tt.wantErr}, domain.ValidationMessages(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantText, body.Fortune)
			}
		})
	}
}

func TestIsJSONContentType(t *testing.T) {
	assert.True(t, IsJSONContentType("application/json"))
	assert.True(t, IsJSONContentType("Application/JSON"))
	assert.True(t, IsJSONContentType("application/merge-patch+json"))
	assert.True(t, IsJSONContentType("application/vnd.api+json"))
	assert.False(t, IsJSONContentType("application/x-www-form-urlencoded"))
	assert.False(t, IsJSONContentType("multipart/form-data"))
	assert.False(t, IsJSONContentType("text/plain"))
	assert.False(t, IsJSONContentType(""))
}
