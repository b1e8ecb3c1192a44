package auth

import "errors"

// Sentinel errors of the authentication pipeline. Each maps to exactly one
// HTTP status in the API layer.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidRole        = errors.New("invalid role")
)
