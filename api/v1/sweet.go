package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/services"
)

var sweetService = services.NewSweetService()

// ListSweets returns the available catalog, sorted by name.
// Public: no session required. Optional ?category= filter.
func ListSweets(c *gin.Context) {
	sweets, err := sweetService.ListAvailable(c.Query("category"))
	if err != nil {
		respondError(c, err, "Failed to fetch sweets")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sweets": sweets})
}

// GetSweet returns a single catalog item. Public.
func GetSweet(c *gin.Context) {
	sweet, err := sweetService.GetSweet(c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch sweet")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sweet": sweet})
}

// CreateSweet adds a catalog item. Admin only (enforced by middleware).
func CreateSweet(c *gin.Context) {
	var req dto.CreateSweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sweet, err := sweetService.CreateSweet(req)
	if err != nil {
		respondError(c, err, "Failed to create sweet")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sweet": sweet})
}

// UpdateSweet applies a partial update to a catalog item. Admin only.
func UpdateSweet(c *gin.Context) {
	var req dto.UpdateSweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	sweet, err := sweetService.UpdateSweet(c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update sweet")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sweet": sweet})
}

// DeleteSweet removes a catalog item. Admin only.
func DeleteSweet(c *gin.Context) {
	if err := sweetService.DeleteSweet(c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete sweet")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sweet deleted successfully"})
}
