package dto

// OrderItemRequest represents one requested line of a new order.
// PriceAtTime is accepted for wire compatibility but never trusted:
// the stored snapshot always comes from the live catalog price.
type OrderItemRequest struct {
	SweetID     string  `json:"sweet_id" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	PriceAtTime float64 `json:"price_at_time"`
}

// CreateOrderRequest represents the payload for placing an order
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"dive"`
	DeliveryAddress string             `json:"delivery_address" binding:"required"`
	DeliveryDate    string             `json:"delivery_date" binding:"required"`
	Notes           *string            `json:"notes"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
