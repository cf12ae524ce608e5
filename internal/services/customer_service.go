// internal/services/customer_service.go
package services

import (
	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

type CustomerService struct {
	customers store.CustomerStore
}

func NewCustomerService(customers store.CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

type CustomerRequest struct {
	FullName      string `json:"full_name" validate:"required,max=255"`
	Phone         string `json:"phone" validate:"max=50"`
	SocialContact string `json:"social_contact" validate:"max=255"`
	Address       string `json:"address"`
}

func (s *CustomerService) Create(req *CustomerRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	customer := &models.Customer{
		FullName:      req.FullName,
		Phone:         req.Phone,
		SocialContact: req.SocialContact,
		Address:       req.Address,
	}
	if err := s.customers.Create(customer); err != nil {
		return nil, apperrors.NewPersistenceError("customer_insert", err)
	}
	return customer, nil
}

func (s *CustomerService) Get(id uuid.UUID) (*models.Customer, error) {
	return s.customers.GetByID(id)
}

func (s *CustomerService) List(page, limit int, search string) ([]models.Customer, int64, error) {
	return s.customers.List(page, limit, search)
}

func (s *CustomerService) Update(id uuid.UUID, req *CustomerRequest) (*models.Customer, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	customer := &models.Customer{
		ID:            id,
		FullName:      req.FullName,
		Phone:         req.Phone,
		SocialContact: req.SocialContact,
		Address:       req.Address,
	}
	if err := s.customers.Update(customer); err != nil {
		return nil, err
	}
	return s.customers.GetByID(id)
}

func (s *CustomerService) Delete(id uuid.UUID) error {
	return s.customers.Delete(id)
}
