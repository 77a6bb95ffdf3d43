package services

import (
	"fmt"

	"github.com/sweetshop-api/models"
	"github.com/sweetshop-api/repositories"
)

// FavoriteService handles the caller's favorites
type FavoriteService struct {
	favoriteRepo *repositories.FavoriteRepository
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService() *FavoriteService {
	return &FavoriteService{
		favoriteRepo: repositories.NewFavoriteRepository(),
	}
}

// ListFavorites retrieves the caller's favorites with sweets nested
func (s *FavoriteService) ListFavorites(userID string) ([]models.Favorite, error) {
	return s.favoriteRepo.FindByUserID(userID)
}

// AddFavorite marks a sweet as favorited by the caller
func (s *FavoriteService) AddFavorite(userID, sweetID string) (models.Favorite, error) {
	favorite := models.Favorite{
		UserID:  userID,
		SweetID: sweetID,
	}
	return s.favoriteRepo.Create(favorite)
}

// RemoveFavorite deletes the caller's favorite for a sweet
func (s *FavoriteService) RemoveFavorite(userID, sweetID string) error {
	if sweetID == "" {
		return fmt.Errorf("%w: sweet_id is required", ErrInvalidRequest)
	}
	return s.favoriteRepo.Delete(userID, sweetID)
}
