// Package common defines shared constants and sentinel errors used across the
// client and server layers of Memora. Callers should match these values with
// errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")

	// App-lock errors.
	ErrNoAppLock       = errors.New("no app lock set")
	ErrAppLockMismatch = errors.New("invalid app lock passcode")

	// Client-side transport errors.
	ErrServerUnavailable = errors.New("server unavailable")
)
