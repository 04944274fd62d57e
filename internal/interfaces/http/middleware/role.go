package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleAdmin is the role value carried in admin tokens
const RoleAdmin = "admin"

// RoleConfig holds configuration for role middleware
type RoleConfig struct {
	// Logger for middleware logging
	Logger *zap.Logger
}

// RequireAdmin creates middleware that rejects non-admin users
func RequireAdmin() gin.HandlerFunc {
	return RequireAdminWithConfig(RoleConfig{})
}

// RequireAdminWithConfig creates admin-only middleware with custom config
func RequireAdminWithConfig(cfg RoleConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		if claims.Role != RoleAdmin {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Admin access denied",
					zap.String("user_id", claims.UserID),
					zap.String("role", claims.Role),
					zap.String("path", c.Request.URL.Path),
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Administrator role required",
				},
			})
			return
		}

		c.Next()
	}
}
