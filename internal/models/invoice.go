// internal/models/invoice.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice finalizes exactly one sale event. A watch may accumulate several
// invoices only through historical re-sale scenarios.
type Invoice struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WatchID    uuid.UUID `json:"watch_id" gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;not null;index"`
	SalePrice  float64   `json:"sale_price" gorm:"type:decimal(12,2);not null"`
	SaleDate   time.Time `json:"sale_date" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Watch    *Watch    `json:"watch,omitempty" gorm:"foreignKey:WatchID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (Invoice) TableName() string {
	return "invoices"
}
