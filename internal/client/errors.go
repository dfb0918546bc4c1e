package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNetwork is wrapped by every transport level failure (timeouts, refused connections, cancelled contexts)
var ErrNetwork = errors.New("network error")

// APIError is returned for non-2xx upstream responses
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// newAPIError builds an APIError from a response body, preferring the body's "message".
// The message may be a string or a list of strings.
func newAPIError(status int, body []byte) *APIError {
	message := ""

	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		message = decodeMessage(payload.Message)
		if message == "" {
			message = payload.Error
		}
	}

	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "request failed"
	}

	return &APIError{StatusCode: status, Message: message}
}

func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return ""
}

// StatusCode returns the upstream status code carried by err, or 0 if err is not an APIError
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is an upstream 404
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
