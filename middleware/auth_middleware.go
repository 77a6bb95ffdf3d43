package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/services"
)

// AuthMiddleware creates a middleware that resolves the acting identity
// from the request's session token. The token is read from the
// access_token cookie or an Authorization: Bearer header. On success the
// user id, email and role are placed on the context for downstream
// handlers. Requests that prefer HTML are redirected to the login page
// instead of receiving a JSON 401 (page vs API distinction).
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			rejectUnauthenticated(c, "Authentication required")
			return
		}

		claims, err := services.ValidateToken(token)
		if err != nil {
			rejectUnauthenticated(c, "Invalid or expired token")
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// extractToken pulls the JWT from the cookie or the Authorization header
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie("access_token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}

func rejectUnauthenticated(c *gin.Context, message string) {
	// Page loads get a redirect, API clients get the JSON envelope
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/auth/login")
		c.Abort()
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}
