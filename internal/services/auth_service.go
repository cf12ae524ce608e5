// internal/services/auth_service.go
package services

import (
	"errors"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/config"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

type AuthService struct {
	operators store.OperatorStore
	config    *config.Config
}

func NewAuthService(operators store.OperatorStore, cfg *config.Config) *AuthService {
	return &AuthService{operators: operators, config: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Operator *models.Operator `json:"operator"`
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	op, err := s.operators.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("email", "invalid credentials")
		}
		return nil, err
	}

	if !op.IsActive || !op.CheckPassword(req.Password) {
		return nil, apperrors.NewValidationError("email", "invalid credentials")
	}

	token, err := utils.GenerateJWT(op.ID, op.Email, op.Name, s.config.JWT.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Operator: op}, nil
}
