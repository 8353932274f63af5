package api

import (
	"errors"
	"net/http"

	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
//
// Duplicate-registration and bad-credential failures map to 400 rather
// than 409/401: the original wire contract uses 400 for both and clients
// depend on it.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Unknown email and wrong password deliberately produce the same
// message.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrEmailExists):
		return "This email is already registered. Please use a different email or login."

	case errors.Is(err, store.ErrUsernameExists):
		return "This username is already taken. Please choose a different username."

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid Credentials"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken):
		return "Token is not valid"

	default:
		return "An unexpected error occurred"
	}
}
