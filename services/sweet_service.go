package services

import (
	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/models"
	"github.com/sweetshop-api/repositories"
)

// SweetService handles business logic for the catalog
type SweetService struct {
	sweetRepo *repositories.SweetRepository
}

// NewSweetService creates a new sweet service instance
func NewSweetService() *SweetService {
	return &SweetService{
		sweetRepo: repositories.NewSweetRepository(),
	}
}

// ListAvailable retrieves the available catalog, sorted by name.
// An empty category means no filter.
func (s *SweetService) ListAvailable(category string) ([]models.Sweet, error) {
	return s.sweetRepo.FindAvailable(category)
}

// GetSweet retrieves a single catalog item
func (s *SweetService) GetSweet(id string) (models.Sweet, error) {
	return s.sweetRepo.FindByID(id)
}

// CreateSweet adds a new catalog item. Role gating happens in the
// middleware; the service trusts its caller.
func (s *SweetService) CreateSweet(req dto.CreateSweetRequest) (models.Sweet, error) {
	sweet := models.Sweet{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		IsAvailable:   true,
	}
	return s.sweetRepo.Create(sweet)
}

// UpdateSweet applies a partial update to a catalog item
func (s *SweetService) UpdateSweet(id string, req dto.UpdateSweetRequest) (models.Sweet, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		fields["stock_quantity"] = *req.StockQuantity
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
	}

	if len(fields) == 0 {
		return s.sweetRepo.FindByID(id)
	}

	return s.sweetRepo.UpdateFields(id, fields)
}

// DeleteSweet removes a catalog item
func (s *SweetService) DeleteSweet(id string) error {
	return s.sweetRepo.Delete(id)
}
