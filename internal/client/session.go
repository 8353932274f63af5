package client

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMalformedToken indicates the token is not a decodable JWT.
var ErrMalformedToken = errors.New("malformed session token")

// Session is the display identity derived from a session token. It is
// decoded locally from the token payload without a server round-trip and
// without signature verification; the server remains the authority on
// whether the token is actually accepted.
type Session struct {
	UserID    uuid.UUID
	Email     string
	Username  string
	ExpiresAt time.Time
}

// DecodeSession extracts the identity and expiry from a session token.
func DecodeSession(token string) (*Session, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var claims struct {
		Subject  string `json:"sub"`
		Email    string `json:"email"`
		Username string `json:"username"`
		Expiry   int64  `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	return &Session{
		UserID:    userID,
		Email:     claims.Email,
		Username:  claims.Username,
		ExpiresAt: time.Unix(claims.Expiry, 0),
	}, nil
}

// Expired reports whether the session's token has passed its expiry.
// An expired session reads as "no session": the caller must log in again.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
