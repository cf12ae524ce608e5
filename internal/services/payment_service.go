// internal/services/payment_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/config"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

// PaymentService creates deposit payment intents for invoices of remote
// sales. Payment never gates finalization; a sale is final once the invoice
// row exists.
type PaymentService struct {
	invoices store.InvoiceStore
	config   *config.Config
}

func NewPaymentService(invoices store.InvoiceStore, cfg *config.Config) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		invoices: invoices,
		config:   cfg,
	}
}

type DepositIntentRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency,omitempty"`
}

type DepositIntentResponse struct {
	ClientSecret string `json:"client_secret"`
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
}

func (s *PaymentService) CreateDepositIntent(invoiceID uuid.UUID, req *DepositIntentRequest) (*DepositIntentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	invoice, err := s.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if req.Amount > invoice.SalePrice {
		return nil, apperrors.NewValidationError("amount", "deposit exceeds invoice sale price")
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("invoice_id", invoiceID.String())
	params.AddMetadata("watch_id", invoice.WatchID.String())

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &DepositIntentResponse{
		ClientSecret: pi.ClientSecret,
		PaymentID:    pi.ID,
		Status:       string(pi.Status),
	}, nil
}
