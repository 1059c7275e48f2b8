package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf-api/internal/shared/response"
	"bookshelf-api/pkg/jwt"
)

// ContextUserIDKey is where the resolved identity lands in the gin context.
const ContextUserIDKey = "userID"

// AuthMiddleware resolves the bearer credential into a user identity.
// Requests without a valid access token never reach the handler.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		if claims.UserID <= 0 {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID reads the identity set by AuthMiddleware.
// found = false means identity resolution did not happen for this request.
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	if !ok {
		return 0, false
	}
	return id, true
}
