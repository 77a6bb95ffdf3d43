package models

import (
	"time"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle stage of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
// There is no transition table: any valid status may replace any other.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents an order header
type Order struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID          string         `json:"user_id" gorm:"type:uuid;not null;index"`
	Status          OrderStatus    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TotalAmount     float64        `json:"total_amount" gorm:"not null"`
	DeliveryAddress string         `json:"delivery_address" gorm:"not null"`
	DeliveryDate    string         `json:"delivery_date" gorm:"not null"`
	Notes           *string        `json:"notes" gorm:"default:null"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Profile Profile     `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Items   []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem represents one line of an order. The price is snapshotted at
// order time and never recomputed from the catalog afterwards.
type OrderItem struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrderID     string    `json:"order_id" gorm:"type:uuid;not null;index"`
	SweetID     string    `json:"sweet_id" gorm:"type:uuid;not null;index"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	PriceAtTime float64   `json:"price_at_time" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Sweet Sweet `json:"sweets,omitempty" gorm:"foreignKey:SweetID"`
}
