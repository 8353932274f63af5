package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/mocks"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	validClaims := &auth.Claims{
		UserID:   userID,
		Email:    "alice@example.com",
		Username: "alice",
	}

	// The wrapped handler echoes the identity the middleware attached.
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetUserID(r)
		require.True(t, ok, "identity must be present after authentication")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(id.String()))
	})

	errorMessage := func(t *testing.T, w *httptest.ResponseRecorder) string {
		t.Helper()
		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.Error
	}

	t.Run("valid token passes identity through", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{Claims: validClaims}
		m := middleware.NewAuthMiddleware(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(middleware.TokenHeader, "valid-token")
		w := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{Claims: validClaims}
		m := middleware.NewAuthMiddleware(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "No token, authorization denied", errorMessage(t, w))
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{
			ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
		}
		m := middleware.NewAuthMiddleware(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(middleware.TokenHeader, "expired-token")
		w := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token expired", errorMessage(t, w))
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		m := middleware.NewAuthMiddleware(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(middleware.TokenHeader, "garbage")
		w := httptest.NewRecorder()
		m.Authenticate(protected).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token is not valid", errorMessage(t, w))
	})
}
