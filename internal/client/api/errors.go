package api

import (
	"errors"
	"net/http"
)

var (
	// ErrNoConnection means the request was made but no response was
	// received. All transport-level failures are normalized to it.
	ErrNoConnection = errors.New("no connection to server")

	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is a non-2xx response from the server. Message carries the
// server-supplied message when the body contained one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// Unwrap maps well-known statuses to sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}
