// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type OwnershipType string

const (
	OwnershipTypeStock      OwnershipType = "stock"
	OwnershipTypeCommission OwnershipType = "commission"
)

type WatchStatus string

const (
	WatchStatusAvailable WatchStatus = "Available"
	WatchStatusReserved  WatchStatus = "Reserved"
	WatchStatusSold      WatchStatus = "Sold"
	WatchStatusHidden    WatchStatus = "Hidden"
)

func (s WatchStatus) Valid() bool {
	switch s {
	case WatchStatusAvailable, WatchStatusReserved, WatchStatusSold, WatchStatusHidden:
		return true
	}
	return false
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type ActionType string

const (
	ActionCreateWatch      ActionType = "CREATE_WATCH"
	ActionEditWatch        ActionType = "EDIT_WATCH"
	ActionDeleteWatch      ActionType = "DELETE_WATCH"
	ActionTogglePublic     ActionType = "TOGGLE_PUBLIC"
	ActionFinalizeSale     ActionType = "FINALIZE_SALE"
	ActionRevertSoldStatus ActionType = "REVERT_SOLD_STATUS"
)
