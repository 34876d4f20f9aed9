package vapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrAuthIDRequired    = errors.New("auth ID is required")
	ErrAuthTokenRequired = errors.New("auth token is required")
	ErrEndpointRequired  = errors.New("API endpoint is required")
	ErrEmptyResponse     = errors.New("empty response body")
)

// TransportError reports that the HTTP exchange itself could not be
// completed (DNS, connect, TLS, context cancellation). It is always
// distinct from a provider response: if the caller sees a TransportError,
// no status code was received.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a success-status body that failed to parse as JSON.
// The raw body is retained for inspection.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response body (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying JSON error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError represents a non-2xx provider response interpreted as a failure
// by the resource client layer. The gateway itself never raises it: there a
// provider status is an ordinary value carried on the Result.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// IsTransportError checks if the error is a transport failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecodeError checks if the error is a response decode failure.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsNotFound checks if the error is a provider 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a provider 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsBadRequest checks if the error is a provider 400.
func IsBadRequest(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
