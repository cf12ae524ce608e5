// internal/store/customer_store.go
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

type GormCustomerStore struct {
	db *gorm.DB
}

func NewGormCustomerStore(db *gorm.DB) *GormCustomerStore {
	return &GormCustomerStore{db: db}
}

func (s *GormCustomerStore) GetByID(id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return &customer, nil
}

func (s *GormCustomerStore) List(page, limit int, search string) ([]models.Customer, int64, error) {
	query := s.db.Model(&models.Customer{})

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR phone LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customers []models.Customer
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, total, nil
}

func (s *GormCustomerStore) Create(c *models.Customer) error {
	if err := s.db.Create(c).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (s *GormCustomerStore) Update(c *models.Customer) error {
	result := s.db.Model(&models.Customer{}).Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"full_name":      c.FullName,
			"phone":          c.Phone,
			"social_contact": c.SocialContact,
			"address":        c.Address,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *GormCustomerStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
