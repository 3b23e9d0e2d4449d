// Package common defines shared constants and sentinel errors used across
// the client and server layers of the intake service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrLocked is returned when a mutation is attempted on a submitted
	// intake record. Only drafts are editable.
	ErrLocked = errors.New("intake is locked")

	// Validation errors.
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrConsentIncomplete = errors.New("consent section incomplete")
)
