// Package clients provides the HTTP client used to call the fortune API.
package clients

import (
	"errors"
	"fmt"
)

// Client errors represent failures in the HTTP client layer.
// They are translated to domain errors by the acl package.
var (
	// ErrCircuitOpen is returned when the circuit breaker rejects a request.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrAttemptsExhausted is returned once every allowed attempt has failed.
	// The last attempt's error is wrapped.
	ErrAttemptsExhausted = errors.New("request attempts exhausted")
)

// ServerError is a 5xx response from the downstream service.
type ServerError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d", e.StatusCode)
}
