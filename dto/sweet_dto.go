package dto

// CreateSweetRequest represents the payload for adding a catalog item
type CreateSweetRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	Price         float64 `json:"price" binding:"min=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	Category      string  `json:"category" binding:"required"`
	ImageURL      *string `json:"image_url"`
}

// UpdateSweetRequest represents a partial catalog item update.
// Nil fields are left unchanged.
type UpdateSweetRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,min=0"`
	StockQuantity *int     `json:"stock_quantity" binding:"omitempty,min=0"`
	Category      *string  `json:"category"`
	ImageURL      *string  `json:"image_url"`
	IsAvailable   *bool    `json:"is_available"`
}
