// internal/models/activity_log.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogEntry is append-only. Nothing in the engine mutates or deletes
// rows of this table; reporting collaborators consume them as written.
type ActivityLogEntry struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     *uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	UserEmail  string     `json:"user_email" gorm:"size:255"`
	ActionType ActionType `json:"action_type" gorm:"type:varchar(30);not null;index"`
	Details    JSONB      `json:"details" gorm:"type:jsonb"`
	CreatedAt  time.Time  `json:"created_at" gorm:"index"`
}

func (ActivityLogEntry) TableName() string {
	return "activity_logs"
}
