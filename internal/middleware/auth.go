package middleware

import (
	"net/http"

	"accstore-be/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	// AdminKey holds the authenticated admin username in the gin context.
	AdminKey = "admin"

	// SessionKey holds the storefront session id (the telegram user id the
	// bot hands off).
	SessionKey = "sessionID"
)

// AdminOnly rejects requests without a valid admin token. The token is read
// from the access_token cookie first, then the Authorization header.
func AdminOnly(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractAccessToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		claims, err := auth.ParseJWT(token, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(AdminKey, claims.Username)
		c.Next()
	}
}

// Identity extracts the storefront session id from the userId query
// parameter or the X-Telegram-ID header. Handlers that require an identity
// use SessionFrom and treat an empty value as unauthenticated.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := c.Query("userId")
		if session == "" {
			session = c.GetHeader("X-Telegram-ID")
		}
		if session != "" {
			c.Set(SessionKey, session)
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) string {
	return c.GetString(SessionKey)
}
