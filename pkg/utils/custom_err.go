package utils

import (
	"errors"
	"fmt"
)

var (
	ErrTransport        = errors.New("transport failure")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrDecode           = errors.New("response decode failure")

	ErrNoSession      = errors.New("no stored session token")
	ErrInvalidToken   = errors.New("malformed session token")
	ErrFlowNotFound   = errors.New("sign-up flow not found")
	ErrInvalidRequest = errors.New("invalid request")
)

// APIError is a non-2xx answer from the backend. Message is the backend's
// own message when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
