// internal/store/activity_store.go
package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/arclux/watchdesk-backend/internal/models"
)

// GormActivityStore only ever inserts and reads. There is deliberately no
// update or delete method; the activity log is append-only.
type GormActivityStore struct {
	db *gorm.DB
}

func NewGormActivityStore(db *gorm.DB) *GormActivityStore {
	return &GormActivityStore{db: db}
}

func (s *GormActivityStore) Insert(entry *models.ActivityLogEntry) error {
	if err := s.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert activity log entry: %w", err)
	}
	return nil
}

func (s *GormActivityStore) List(page, limit int, actionType *models.ActionType) ([]models.ActivityLogEntry, int64, error) {
	query := s.db.Model(&models.ActivityLogEntry{})
	if actionType != nil {
		query = query.Where("action_type = ?", *actionType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activity log entries: %w", err)
	}

	var entries []models.ActivityLogEntry
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch activity log entries: %w", err)
	}
	return entries, total, nil
}
