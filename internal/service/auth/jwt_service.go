package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// JWTService defines operations for issuing and verifying session tokens.
// Tokens are stateless: validity is determined solely by the signature and
// the expiry claim, with no server-side session store.
type JWTService interface {
	// GenerateToken creates a signed session token carrying the user's
	// identity (id, email, username).
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken verifies the token string and extracts its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded identity carried by a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"id"`

	// Email is the user's email address at issuance time.
	Email string `json:"email"`

	// Username is the user's display name at issuance time.
	Username string `json:"username"`

	// IssuedAt and ExpiresAt bound the token's validity window.
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
