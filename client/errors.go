package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrSessionInvalidated is returned when the backend rejected the session
// (401/403) and the interceptor cleared the stored token.
var ErrSessionInvalidated = errors.New("session invalidated by backend")

// SessionInvalidatedError carries the rejected request details.
// It matches ErrSessionInvalidated with errors.Is.
type SessionInvalidatedError struct {
	StatusCode int
	Path       string
}

func (e *SessionInvalidatedError) Error() string {
	return fmt.Sprintf("session invalidated: %s answered %d", e.Path, e.StatusCode)
}

func (e *SessionInvalidatedError) Is(target error) bool {
	return target == ErrSessionInvalidated
}

// APIError is a non-2xx answer from the backend that did not invalidate the session.
type APIError struct {
	StatusCode int    `json:"-"`
	Path       string `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend answered %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: backend answered %d: %s", e.Path, e.StatusCode, e.Message)
}

// newAPIError extracts the backend's message from a JSON {"message": ...}
// body, falling back to the raw text.
func newAPIError(status int, path string, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Path: path}
	if err := json.Unmarshal(body, apiErr); err == nil && apiErr.Message != "" {
		return apiErr
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	apiErr.Message = text
	return apiErr
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var invalidated *SessionInvalidatedError
	if errors.As(err, &invalidated) {
		return invalidated.StatusCode
	}
	return 0
}
