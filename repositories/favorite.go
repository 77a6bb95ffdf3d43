package repositories

import (
	"github.com/sweetshop-api/database"
	"github.com/sweetshop-api/models"
)

// FavoriteRepository handles database operations for favorites
type FavoriteRepository struct{}

// NewFavoriteRepository creates a new favorite repository instance
func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{}
}

// FindByUserID retrieves a user's favorites with the sweets nested
func (r *FavoriteRepository) FindByUserID(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	result := database.DB.
		Preload("Sweet").
		Where("user_id = ?", userID).
		Find(&favorites)
	return favorites, result.Error
}

// Create inserts a new favorite into the database
func (r *FavoriteRepository) Create(favorite models.Favorite) (models.Favorite, error) {
	result := database.DB.Create(&favorite)
	return favorite, result.Error
}

// Delete removes the caller's favorite for a sweet
func (r *FavoriteRepository) Delete(userID, sweetID string) error {
	result := database.DB.
		Where("user_id = ? AND sweet_id = ?", userID, sweetID).
		Delete(&models.Favorite{})
	return result.Error
}
