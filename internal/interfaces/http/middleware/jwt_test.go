package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gemba/backend/internal/infrastructure/auth"
	"github.com/gemba/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "gemba-test",
		MaxRefreshCount:        5,
	})
}

func issueTestToken(t *testing.T, svc *auth.JWTService) (string, *auth.Claims) {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID:  uuid.New(),
		UserID:    uuid.New(),
		Username:  "yamada",
		Role:      "user",
		StaffCode: "07",
	})
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	return pair.AccessToken, claims
}

func newAuthTestRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddlewareWithConfig(cfg))
	r.GET("/api/v1/works/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": GetJWTTenantID(c),
			"user_id":   GetJWTUserID(c),
			"role":      GetJWTRole(c),
		})
	})
	r.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService()

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		r := newAuthTestRouter(DefaultJWTConfig(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/works/projects", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		r := newAuthTestRouter(DefaultJWTConfig(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/works/projects", nil)
		req.Header.Set(AuthHeaderKey, "Basic dXNlcjpwYXNz")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("passes a valid token and exposes the claims", func(t *testing.T) {
		token, claims := issueTestToken(t, svc)
		r := newAuthTestRouter(DefaultJWTConfig(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/works/projects", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), claims.TenantID)
		assert.Contains(t, w.Body.String(), claims.UserID)
	})

	t.Run("skips configured paths", func(t *testing.T) {
		r := newAuthTestRouter(DefaultJWTConfig(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		token, claims := issueTestToken(t, svc)
		blacklist := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist
		r := newAuthTestRouter(cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/works/projects", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})

	t.Run("rejects tokens issued before a user-wide invalidation", func(t *testing.T) {
		token, claims := issueTestToken(t, svc)
		blacklist := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), claims.UserID, time.Hour))

		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist
		r := newAuthTestRouter(cfg)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/works/projects", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestJWTService()
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(JWTAuthMiddleware(svc))
		admin := r.Group("/api/v1/identity", RequireAdmin())
		admin.GET("/users", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	issue := func(t *testing.T, role string) string {
		t.Helper()
		pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
			TenantID: uuid.New(),
			UserID:   uuid.New(),
			Username: "yamada",
			Role:     role,
		})
		require.NoError(t, err)
		return pair.AccessToken
	}

	t.Run("allows an admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/identity/users", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+issue(t, "admin"))
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a regular user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/identity/users", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+issue(t, "user"))
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})
}
