// internal/store/watch_store.go
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
)

type GormWatchStore struct {
	db *gorm.DB
}

func NewGormWatchStore(db *gorm.DB) *GormWatchStore {
	return &GormWatchStore{db: db}
}

func (s *GormWatchStore) GetByID(id uuid.UUID) (*models.Watch, error) {
	var watch models.Watch
	err := s.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, created_at ASC")
	}).Preload("Invoices").First(&watch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch watch: %w", err)
	}
	return &watch, nil
}

func (s *GormWatchStore) List(params ListWatchesParams) ([]models.Watch, int64, error) {
	query := s.db.Model(&models.Watch{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Ownership != nil {
		query = query.Where("ownership_type = ?", *params.Ownership)
	}
	if params.Brand != "" {
		query = query.Where("brand = ?", params.Brand)
	}
	if params.PublicOnly {
		query = query.Where("is_public = ? AND status <> ?", true, models.WatchStatusSold)
	}
	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(brand) LIKE ? OR LOWER(ref) LIKE ? OR LOWER(model) LIKE ? OR LOWER(serial_no) LIKE ?",
			term, term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count watches: %w", err)
	}

	sortField := params.Sort
	switch sortField {
	case "created_at", "updated_at", "brand", "ref", "selling_price", "view_count", "status":
	default:
		sortField = "created_at"
	}
	order := params.Order
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	offset := (params.Page - 1) * params.Limit
	var watches []models.Watch
	err := query.Order(sortField + " " + order).
		Offset(offset).Limit(params.Limit).
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Find(&watches).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch watches: %w", err)
	}
	return watches, total, nil
}

func (s *GormWatchStore) Create(w *models.Watch) error {
	if err := s.db.Create(w).Error; err != nil {
		return fmt.Errorf("failed to create watch: %w", err)
	}
	return nil
}

func (s *GormWatchStore) Updates(id uuid.UUID, fields map[string]interface{}) error {
	result := s.db.Model(&models.Watch{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update watch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *GormWatchStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Watch{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete watch: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *GormWatchStore) IncrementViewCount(id uuid.UUID) error {
	return s.db.Model(&models.Watch{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}
