// internal/models/customer.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName      string    `json:"full_name" gorm:"size:255;not null;index"`
	Phone         string    `json:"phone" gorm:"size:50;index"`
	SocialContact string    `json:"social_contact" gorm:"size:255"`
	Address       string    `json:"address" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Customer) TableName() string {
	return "customers"
}
