package repositories

import (
	"github.com/sweetshop-api/database"
	"github.com/sweetshop-api/models"
)

// SweetRepository handles database operations for catalog items
type SweetRepository struct{}

// NewSweetRepository creates a new sweet repository instance
func NewSweetRepository() *SweetRepository {
	return &SweetRepository{}
}

// FindAvailable retrieves available catalog items sorted by name,
// optionally filtered by category
func (r *SweetRepository) FindAvailable(category string) ([]models.Sweet, error) {
	var sweets []models.Sweet
	db := database.DB.Where("is_available = ?", true)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	result := db.Order("name asc").Find(&sweets)
	return sweets, result.Error
}

// FindByID retrieves a catalog item by its ID
func (r *SweetRepository) FindByID(id string) (models.Sweet, error) {
	var sweet models.Sweet
	result := database.DB.First(&sweet, "id = ?", id)
	return sweet, result.Error
}

// Create inserts a new catalog item into the database
func (r *SweetRepository) Create(sweet models.Sweet) (models.Sweet, error) {
	result := database.DB.Create(&sweet)
	return sweet, result.Error
}

// UpdateFields applies a partial update to a catalog item and returns
// the fresh row
func (r *SweetRepository) UpdateFields(id string, fields map[string]interface{}) (models.Sweet, error) {
	if err := database.DB.Model(&models.Sweet{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.Sweet{}, err
	}
	return r.FindByID(id)
}

// Delete removes a catalog item from the database (soft delete)
func (r *SweetRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Sweet{}, "id = ?", id)
	return result.Error
}
