package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen/fortune-service/internal/adapters/clients"
	"github.com/jsamuelsen/fortune-service/internal/domain"
)

// ErrorResponse is an error body returned by the fortune API. It accepts
// both shapes the API produces:
//
//	{"error": ["Text can't be blank"]}                        // user-facing messages
//	{"error": {"code": "...", "message": "..."}, "traceId": ""} // generic envelope
type ErrorResponse struct {
	Messages []string
	Code     string
	Message  string
	TraceID  string
}

// UnmarshalJSON decodes either error shape.
func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Error   json.RawMessage `json:"error"`
		TraceID string          `json:"traceId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.TraceID = raw.TraceID

	trimmed := strings.TrimSpace(string(raw.Error))
	switch {
	case trimmed == "" || trimmed == "null":
		return nil
	case strings.HasPrefix(trimmed, "["):
		return json.Unmarshal(raw.Error, &e.Messages)
	default:
		var detail struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw.Error, &detail); err != nil {
			return err
		}
		e.Code = detail.Code
		e.Message = detail.Message

		return nil
	}
}

// GetMessage returns the most descriptive message in the body.
func (e *ErrorResponse) GetMessage() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, ", ")
	}

	return e.Message
}

// ParseErrorResponse attempts to parse an error response body.
// Returns nil if the body is empty or cannot be parsed.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetMessage() == "" && errResp.Code == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed call to a domain error:
//   - client errors (circuit open, attempts exhausted, transport) → unavailable
//   - 404 → not found
//   - 400/422 → validation, one field error per message
//   - 403 → forbidden
//   - anything else → unavailable
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))

	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError("fortune", "")

	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		ve := &domain.ValidationError{}
		if errResp != nil && len(errResp.Messages) > 0 {
			for _, m := range errResp.Messages {
				ve.Add("", m)
			}
		} else {
			ve.Add("", message)
		}

		return ve

	case http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)

	default:
		return domain.NewUnavailableError(serviceName, message)
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}
