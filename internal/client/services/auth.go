// Package services contains the typed request functions of the notable
// client: one service per remote concern, each call a single
// request/response round trip with no retries and no caching.
package services

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notable/internal/client/api"
	"github.com/dkrasnov/notable/internal/client/models"
)

// AuthService defines the authentication operations.
//
// Contract:
//   - SignIn: authenticate with email and password; the server sets the
//     session cookie on the shared transport.
//   - SignUp: create an account; on success the session is established.
//   - CurrentUser: resolve the session cookie to a user; fails when no
//     valid session exists.
//   - SignOut: best-effort server-side invalidation.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignUp(ctx context.Context, name, email, password string) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	SignOut(ctx context.Context) error
}

type authService struct {
	client *api.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client *api.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	req := models.SignInRequest{Email: email, Password: password}
	if err := a.client.Post(ctx, "/api/auth/signin", req, &user); err != nil {
		return nil, &AuthError{Message: displayMessage(err, "Signin failed"), Err: err}
	}
	return &user, nil
}

func (a *authService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	var user models.User
	req := models.SignUpRequest{Name: name, Email: email, Password: password}
	if err := a.client.Post(ctx, "/api/auth/signup", req, &user); err != nil {
		return nil, &AuthError{Message: displayMessage(err, "Signup failed"), Err: err}
	}
	return &user, nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.client.Get(ctx, "/api/auth/me", &user); err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	return &user, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.client.Post(ctx, "/api/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
