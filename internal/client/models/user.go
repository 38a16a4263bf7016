// Package models defines client-side data models used by the notable CLI.
package models

// User is the authenticated account as returned by the server.
// It is immutable once fetched and replaced wholesale on re-authentication.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignUpRequest is the payload for POST /api/auth/signup.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInRequest is the payload for POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
