package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidCredentials indicates a failed login. The same error is
	// returned for an unknown email and a wrong password so responses do
	// not leak which one was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
