// internal/store/media_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
)

type GormMediaStore struct {
	db *gorm.DB
}

func NewGormMediaStore(db *gorm.DB) *GormMediaStore {
	return &GormMediaStore{db: db}
}

func (s *GormMediaStore) ListByWatch(watchID uuid.UUID) ([]models.WatchMedia, error) {
	var rows []models.WatchMedia
	err := s.db.Where("watch_id = ?", watchID).
		Order("position ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media rows: %w", err)
	}
	return rows, nil
}

func (s *GormMediaStore) GetByID(id uuid.UUID) (*models.WatchMedia, error) {
	var row models.WatchMedia
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch media row: %w", err)
	}
	return &row, nil
}

func (s *GormMediaStore) Insert(m *models.WatchMedia) error {
	if err := s.db.Create(m).Error; err != nil {
		return fmt.Errorf("failed to insert media row: %w", err)
	}
	return nil
}

func (s *GormMediaStore) Update(m *models.WatchMedia) error {
	err := s.db.Model(&models.WatchMedia{}).Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"url":      m.URL,
			"type":     m.Type,
			"position": m.Position,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update media row: %w", err)
	}
	return nil
}

func (s *GormMediaStore) DeleteWhereIn(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.Delete(&models.WatchMedia{}, "id IN ?", ids).Error; err != nil {
		return fmt.Errorf("failed to delete media rows: %w", err)
	}
	return nil
}
