// internal/store/operator_store.go
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
)

type GormOperatorStore struct {
	db *gorm.DB
}

func NewGormOperatorStore(db *gorm.DB) *GormOperatorStore {
	return &GormOperatorStore{db: db}
}

func (s *GormOperatorStore) GetByEmail(email string) (*models.Operator, error) {
	var op models.Operator
	if err := s.db.First(&op, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch operator: %w", err)
	}
	return &op, nil
}

func (s *GormOperatorStore) Create(op *models.Operator) error {
	if err := s.db.Create(op).Error; err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}
