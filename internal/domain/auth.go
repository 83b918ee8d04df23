// Package domain contains the wire-level types exchanged with the MDD
// backend. They are pass-through DTOs: the client never derives business
// state from them beyond what the views display.
package domain

import "time"

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the backend's answer to a successful login or register.
// ExpiresIn is in seconds; the token itself also carries its expiry claim.
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expiresIn"`
}

// User is the profile record returned by GET /auth/me and stored in the
// session. After a login the client only knows username and email; the ID
// stays zero until the profile is refreshed from the backend.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateProfileRequest carries the optional fields for PUT
// /auth/update-profile. Empty fields are omitted from the payload so the
// backend only touches what the user actually changed.
type UpdateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
