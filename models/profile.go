package models

import (
	"time"
	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Profile represents a customer or admin account
type Profile struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email           string         `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash    string         `json:"-" gorm:"not null"` // Password hash is not exposed in JSON
	FullName        string         `json:"full_name" gorm:"not null"`
	Role            Role           `json:"role" gorm:"type:varchar(10);default:'user'"`
	Phone           *string        `json:"phone" gorm:"default:null"`
	DeliveryAddress *string        `json:"delivery_address" gorm:"default:null"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// IsAdmin reports whether the profile has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
