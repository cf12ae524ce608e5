// internal/models/watch.go
package models

import (
	"github.com/lib/pq"
)

type Watch struct {
	BaseModel
	Brand       string `json:"brand" gorm:"size:100;not null;index"`
	Ref         string `json:"ref" gorm:"size:100;not null;index"`
	Model       string `json:"model" gorm:"size:255"`
	Year        int    `json:"year"`
	SerialNo    string `json:"serial_no" gorm:"size:100"`
	ProductType string `json:"product_type" gorm:"size:50;index"`
	SetType     JSONB  `json:"set_type" gorm:"type:jsonb"`

	CostPrice    float64 `json:"cost_price" gorm:"type:decimal(12,2);default:0"`
	SellingPrice float64 `json:"selling_price" gorm:"type:decimal(12,2);default:0"`
	Currency     string  `json:"currency" gorm:"size:10;default:'USD'"`

	OwnershipType    OwnershipType `json:"ownership_type" gorm:"type:varchar(20);default:'stock';index"`
	CommissionRate   float64       `json:"commission_rate" gorm:"type:decimal(5,2);default:0"`
	CommissionAmount float64       `json:"commission_amount" gorm:"type:decimal(12,2);default:0"`
	OwnerName        string        `json:"owner_name" gorm:"size:255"`
	OwnerContact     string        `json:"owner_contact" gorm:"size:255"`

	Status    WatchStatus `json:"status" gorm:"type:varchar(20);default:'Available';index"`
	IsPublic  bool        `json:"is_public" gorm:"default:false;index"`
	ViewCount int64       `json:"view_count" gorm:"default:0"`

	// Legacy flat media fields kept for backward compatibility with records
	// created before the relational watch_media table existed.
	LegacyImagesURL pq.StringArray `json:"images_url" gorm:"type:text[];column:images_url"`
	LegacyVideoURL  string         `json:"video_url" gorm:"size:1024;column:video_url"`

	// Relationships
	Media    []WatchMedia `json:"media,omitempty" gorm:"foreignKey:WatchID;constraint:OnDelete:CASCADE"`
	Invoices []Invoice    `json:"invoices,omitempty" gorm:"foreignKey:WatchID"`
}

func (Watch) TableName() string {
	return "watches"
}

// IsCommission reports whether commission fields carry meaning for this record.
func (w *Watch) IsCommission() bool {
	return w.OwnershipType == OwnershipTypeCommission
}
