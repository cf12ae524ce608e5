// internal/store/invoice_store.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
)

type GormInvoiceStore struct {
	db *gorm.DB
}

func NewGormInvoiceStore(db *gorm.DB) *GormInvoiceStore {
	return &GormInvoiceStore{db: db}
}

func (s *GormInvoiceStore) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.Preload("Customer").Preload("Watch").First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	return &inv, nil
}

func (s *GormInvoiceStore) Insert(inv *models.Invoice) error {
	if err := s.db.Create(inv).Error; err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

func (s *GormInvoiceStore) ListByWatch(watchID uuid.UUID) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Where("watch_id = ?", watchID).
		Order("sale_date DESC").
		Preload("Customer").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return invoices, nil
}

func (s *GormInvoiceStore) List(page, limit int) ([]models.Invoice, int64, error) {
	query := s.db.Model(&models.Invoice{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	var invoices []models.Invoice
	err := query.Order("sale_date DESC").
		Offset((page - 1) * limit).Limit(limit).
		Preload("Customer").Preload("Watch").
		Find(&invoices).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	return invoices, total, nil
}

func (s *GormInvoiceStore) DeleteByWatch(watchID uuid.UUID) error {
	if err := s.db.Delete(&models.Invoice{}, "watch_id = ?", watchID).Error; err != nil {
		return fmt.Errorf("failed to delete invoices: %w", err)
	}
	return nil
}

func (s *GormInvoiceStore) CountByWatch(watchID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Invoice{}).Where("watch_id = ?", watchID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}
