package models

import (
	"time"
)

// Favorite marks a sweet as favorited by a user
type Favorite struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_sweet"`
	SweetID   string    `json:"sweet_id" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_sweet"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Sweet Sweet `json:"sweets,omitempty" gorm:"foreignKey:SweetID"`
}
