package services

import (
	"errors"

	"github.com/dkrasnov/notable/internal/client/api"
)

// ServiceError is a failed note operation. Message is ready to show to
// the user: the server-supplied message when there was one, otherwise
// the operation's default.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string { return e.Message }
func (e *ServiceError) Unwrap() error { return e.Err }

// AuthError is a failed sign-in or sign-up, carrying the server's
// explanation (invalid credentials, duplicate email) when available.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// displayMessage picks the user-facing message for a failed call:
// the server-supplied message, the normalized connection error, or the
// per-operation fallback.
func displayMessage(err error, fallback string) string {
	if errors.Is(err, api.ErrNoConnection) {
		return "No connection to server"
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
