package repositories

import (
	"github.com/sweetshop-api/database"
	"github.com/sweetshop-api/models"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct{}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// FindByID retrieves a profile by its ID
func (r *ProfileRepository) FindByID(id string) (models.Profile, error) {
	var profile models.Profile
	result := database.DB.First(&profile, "id = ?", id)
	return profile, result.Error
}

// FindByEmail retrieves a profile by email
func (r *ProfileRepository) FindByEmail(email string) (models.Profile, error) {
	var profile models.Profile
	result := database.DB.First(&profile, "email = ?", email)
	return profile, result.Error
}

// ExistsByEmail checks whether a profile with the email already exists
func (r *ProfileRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts a new profile into the database
func (r *ProfileRepository) Create(profile models.Profile) (models.Profile, error) {
	result := database.DB.Create(&profile)
	return profile, result.Error
}

// UpdateFields applies a partial update to a profile and returns the
// fresh row
func (r *ProfileRepository) UpdateFields(id string, fields map[string]interface{}) (models.Profile, error) {
	if err := database.DB.Model(&models.Profile{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.Profile{}, err
	}
	return r.FindByID(id)
}

// UpdateRole sets the role on a profile and returns the fresh row
func (r *ProfileRepository) UpdateRole(id string, role models.Role) (models.Profile, error) {
	if err := database.DB.Model(&models.Profile{}).Where("id = ?", id).Update("role", role).Error; err != nil {
		return models.Profile{}, err
	}
	return r.FindByID(id)
}
