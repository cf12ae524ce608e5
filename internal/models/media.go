// internal/models/media.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchMedia is a persisted gallery row. Rows are exclusively owned by their
// watch and cascade with it.
type WatchMedia struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	WatchID   uuid.UUID `json:"watch_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"size:1024;not null"`
	Type      MediaType `json:"type" gorm:"type:varchar(10);default:'image'"`
	Position  int       `json:"position" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (WatchMedia) TableName() string {
	return "watch_media"
}
