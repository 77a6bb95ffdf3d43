package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/services"
)

// respondError maps a service error onto the HTTP status and the
// standard {"error": ...} envelope. Store failures and missing rows are
// not distinguished: both surface as a generic 500.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("Error: %s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// currentIdentity reads the identity the AuthMiddleware placed on the
// context. ok is false when the request never went through it.
func currentIdentity(c *gin.Context) (userID string, isAdmin bool, ok bool) {
	id, exists := c.Get("userId")
	if !exists {
		return "", false, false
	}
	role, _ := c.Get("role")
	return id.(string), role == "admin", true
}
