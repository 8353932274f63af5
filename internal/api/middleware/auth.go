// Package middleware provides HTTP middleware for the API: session
// verification and request tracing.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

// TokenHeader is the custom request header carrying the session token.
// The original wire contract predates a standard bearer scheme and is
// preserved for client compatibility.
const TokenHeader = "X-Auth-Token"

// AuthMiddleware verifies the session token on every protected request
// and attaches the decoded identity to the request context.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate validates the token from the X-Auth-Token header and adds
// the caller's identity to the request context. Missing tokens and
// invalid or expired tokens are both rejected with 401; no refresh
// mechanism exists, so an expired caller must log in again.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token is not valid")
			}
			return
		}

		ctx := shared.WithIdentity(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user's ID from the request.
// Returns false if the request carries no verified identity.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	claims, ok := shared.IdentityFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}
