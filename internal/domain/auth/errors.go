package auth

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown logins and
	// wrong passwords.
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("insufficient permissions")
)
