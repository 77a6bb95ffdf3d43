package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/services"
)

var favoriteService = services.NewFavoriteService()

// ListFavorites returns the caller's favorites with sweets nested
func ListFavorites(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	favorites, err := favoriteService.ListFavorites(userID)
	if err != nil {
		respondError(c, err, "Failed to fetch favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// AddFavorite marks a sweet as favorited by the caller
func AddFavorite(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sweet_id is required"})
		return
	}

	favorite, err := favoriteService.AddFavorite(userID, req.SweetID)
	if err != nil {
		respondError(c, err, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
}

// RemoveFavorite deletes the caller's favorite for ?sweet_id=...
func RemoveFavorite(c *gin.Context) {
	userID, _, ok := currentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := favoriteService.RemoveFavorite(userID, c.Query("sweet_id")); err != nil {
		respondError(c, err, "Failed to remove favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}
