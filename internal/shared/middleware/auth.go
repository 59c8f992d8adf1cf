package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"musings-backend/pkg/cache"
	"musings-backend/pkg/jwt"
)

// revokedTokenKey mirrors the key written by the user service on logout.
func revokedTokenKey(token string) string {
	return fmt.Sprintf("auth:revoked:%s", token)
}

// AuthMiddleware validates the bearer token and rejects revoked sessions.
// Claims are placed into the gin context for downstream handlers.
func AuthMiddleware(manager *jwt.Manager, store cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}
		token := parts[1]

		// 3. Verify signature and expiry
		claims, err := manager.VerifyToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		// 4. Reject tokens revoked by sign-out
		revoked, err := store.Exists(c.Request.Context(), revokedTokenKey(token))
		if err == nil && revoked {
			abortUnauthorized(c, "token has been revoked")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("token", token)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": message},
	})
	c.Abort()
}
