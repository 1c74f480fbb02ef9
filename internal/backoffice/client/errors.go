package client

import (
	"fmt"
	"sort"
	"strings"
)

// AuthError signals a rejected credential or an expired session (HTTP
// 401). The caller must terminate the session; the client never retries
// silently.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected: %s", e.Message)
}

// NotFoundError signals a stale reference (HTTP 404); a list refresh is the
// recommended recovery.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

// FieldErrors carries the server's structured per-field validation
// messages so the edit session can map them into field slots.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// ServerError is the catch-all for non-2xx responses with no structured
// body. The message is surfaced verbatim; nothing retries automatically.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (HTTP %d): %s", e.Status, e.Message)
}

// NetworkError wraps a transport failure where no response arrived at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
