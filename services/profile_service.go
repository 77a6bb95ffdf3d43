package services

import (
	"fmt"

	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/models"
	"github.com/sweetshop-api/repositories"
)

// ProfileService handles self-service profile operations
type ProfileService struct {
	profileRepo *repositories.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService() *ProfileService {
	return &ProfileService{
		profileRepo: repositories.NewProfileRepository(),
	}
}

// GetProfile retrieves the caller's profile
func (s *ProfileService) GetProfile(userID string) (models.Profile, error) {
	return s.profileRepo.FindByID(userID)
}

// UpdateProfile applies a partial update to the caller's profile.
// Payloads that carry role or email are rejected outright: those
// fields are never writable through this path.
func (s *ProfileService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.Profile, error) {
	if req.CarriesRestrictedFields() {
		return models.Profile{}, fmt.Errorf("%w: cannot change role or email via this endpoint", ErrInvalidRequest)
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DeliveryAddress != nil {
		fields["delivery_address"] = *req.DeliveryAddress
	}

	if len(fields) == 0 {
		return s.profileRepo.FindByID(userID)
	}

	return s.profileRepo.UpdateFields(userID, fields)
}

// UpdateRole switches the caller's own role. Self-service: any
// authenticated user may switch between user and admin, so one login
// doubles as a role switch.
func (s *ProfileService) UpdateRole(userID string, role string) (models.Profile, error) {
	r := models.Role(role)
	if !r.IsValid() {
		return models.Profile{}, fmt.Errorf("%w: invalid role %q", ErrInvalidRequest, role)
	}

	return s.profileRepo.UpdateRole(userID, r)
}
