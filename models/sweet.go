package models

import (
	"time"
	"gorm.io/gorm"
)

// Sweet represents a catalog item
type Sweet struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name          string         `json:"name" gorm:"not null"`
	Description   *string        `json:"description" gorm:"default:null"`
	Price         float64        `json:"price" gorm:"not null;check:price >= 0"`
	StockQuantity int            `json:"stock_quantity" gorm:"not null;default:0;check:stock_quantity >= 0"`
	Category      string         `json:"category" gorm:"not null;index"`
	ImageURL      *string        `json:"image_url" gorm:"default:null"`
	IsAvailable   bool           `json:"is_available" gorm:"not null;default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}
