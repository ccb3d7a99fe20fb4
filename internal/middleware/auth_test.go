package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/middleware"
)

func signToken(t *testing.T, secret string, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	var gotUserID int64
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = middleware.UserIDFromContext(r.Context())
	})
	protected := middleware.AuthMiddleware(cfg)(next)

	t.Run("valid bearer token", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", "42"))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, int64(42), gotUserID)
	})

	t.Run("token via query parameter", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary?token="+signToken(t, "test-secret", "7"), nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), gotUserID)
	})

	t.Run("missing token", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("wrong secret", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", "42"))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("expired token", func(t *testing.T) {
		called = false
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})
}
