package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/services"
)

var profileService = services.NewProfileService()

// GetProfile returns the caller's own profile
func GetProfile(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := profileService.GetProfile(userID)
	if err != nil {
		respondError(c, err, "Failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile applies a partial update to the caller's profile.
// Payloads carrying role or email are rejected with 400.
func UpdateProfile(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	profile, err := profileService.UpdateProfile(userID, req)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateRole switches the caller's own role between user and admin
func UpdateRole(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	profile, err := profileService.UpdateRole(userID, req.Role)
	if err != nil {
		respondError(c, err, "Failed to update role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
