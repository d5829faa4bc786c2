package middleware

import (
	"strings"

	"smartexam_backend/internal/config"
	"smartexam_backend/internal/model"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the Bearer token the external identity provider
// issued and stashes its claims on the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			// Admins hold every portal permission.
			if user.Role == model.RoleAdmin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStore short-circuits every store-backed endpoint with the uniform
// not-configured answer when document store credentials are absent.
func RequireStore(configured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !configured {
			util.NotConfigured(c, "Document store")
			c.Abort()
			return
		}
		c.Next()
	}
}
