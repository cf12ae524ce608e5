// internal/services/sale_service.go
package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

// Step names the saga reports in persistence failures.
const (
	StepWatchUpdate   = "watch_update"
	StepInvoiceInsert = "invoice_insert"
)

// ErrSoldWithoutInvoice marks the partial state where the watch write
// committed but the invoice insert did not. The watch is Sold with no invoice;
// an operator must reconcile manually. Never masked as a generic failure.
var ErrSoldWithoutInvoice = errors.New("watch marked Sold but invoice was not created")

// SaleService runs the finalization saga: watch update, invoice insert, audit
// append, in that order. Steps are not parallelized; each depends on the
// previous one having committed. Committed steps are not rolled back on a
// later failure — the error tells the caller exactly how far it got.
type SaleService struct {
	watches   store.WatchStore
	invoices  store.InvoiceStore
	customers store.CustomerStore
	activity  *ActivityService
}

func NewSaleService(watches store.WatchStore, invoices store.InvoiceStore,
	customers store.CustomerStore, activity *ActivityService) *SaleService {
	return &SaleService{
		watches:   watches,
		invoices:  invoices,
		customers: customers,
		activity:  activity,
	}
}

type FinalizeSaleRequest struct {
	CustomerID     uuid.UUID  `json:"customer_id" validate:"required"`
	FinalSalePrice float64    `json:"final_sale_price" validate:"required,gt=0"`
	SaleDate       *time.Time `json:"sale_date,omitempty"`

	// Editable watch fields applied with the same write. selling_price may
	// differ from final_sale_price; the final price is the source of truth
	// for the sale.
	SellingPrice *float64 `json:"selling_price,omitempty" validate:"omitempty,min=0"`
	SerialNo     *string  `json:"serial_no,omitempty"`
	Model        *string  `json:"model,omitempty"`
}

type FinalizeSaleResult struct {
	Watch   *models.Watch   `json:"watch"`
	Invoice *models.Invoice `json:"invoice"`
}

// Finalize validates everything before any write: the final price must be
// positive and the customer must resolve. Then the ordered steps run.
func (s *SaleService) Finalize(watchID uuid.UUID, req *FinalizeSaleRequest, actor Actor) (*FinalizeSaleResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.FinalSalePrice <= 0 {
		return nil, apperrors.NewValidationError("final_sale_price", "must be greater than zero")
	}

	customer, err := s.customers.GetByID(req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("customer_id", "customer not found")
		}
		return nil, apperrors.NewPersistenceError("customer_lookup", err)
	}

	watch, err := s.watches.GetByID(watchID)
	if err != nil {
		return nil, err
	}

	// Step 1: commit the watch as Sold and private in one write.
	fields := map[string]interface{}{
		"status":     models.WatchStatusSold,
		"is_public":  false,
		"updated_at": time.Now(),
	}
	if req.SellingPrice != nil {
		fields["selling_price"] = *req.SellingPrice
	}
	if req.SerialNo != nil {
		fields["serial_no"] = *req.SerialNo
	}
	if req.Model != nil {
		fields["model"] = *req.Model
	}
	if err := s.watches.Updates(watchID, fields); err != nil {
		return nil, apperrors.NewPersistenceError(StepWatchUpdate, err)
	}

	// Step 2: insert the invoice. On failure the system now holds a Sold
	// watch without an invoice; surface that state distinctly instead of
	// attempting a rollback of step 1.
	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}
	invoice := &models.Invoice{
		WatchID:    watchID,
		CustomerID: customer.ID,
		SalePrice:  req.FinalSalePrice,
		SaleDate:   saleDate,
	}
	if err := s.invoices.Insert(invoice); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"watch_id":    watchID,
			"customer_id": customer.ID,
		}).Error("Sale finalization left a Sold watch without an invoice")
		return nil, apperrors.NewPersistenceError(StepInvoiceInsert, ErrSoldWithoutInvoice)
	}

	// Step 3: audit, best-effort. Record reports its own failures to
	// observability and never fails the sale.
	s.activity.Record(models.ActionFinalizeSale, models.JSONB{
		"watchId":    watchID.String(),
		"ref":        watch.Ref,
		"customerId": customer.ID.String(),
		"salePrice":  req.FinalSalePrice,
	}, actor)

	watch.Status = models.WatchStatusSold
	watch.IsPublic = false
	if req.SellingPrice != nil {
		watch.SellingPrice = *req.SellingPrice
	}
	invoice.Customer = customer

	return &FinalizeSaleResult{Watch: watch, Invoice: invoice}, nil
}

// RecordHistoricalSale is the manual entry path for sales that happened before
// the system existed. It shares the finalization invariant: the invoice insert
// coincides with forcing the watch Sold.
func (s *SaleService) RecordHistoricalSale(watchID uuid.UUID, req *FinalizeSaleRequest, actor Actor) (*FinalizeSaleResult, error) {
	if req.SaleDate == nil {
		return nil, apperrors.NewValidationError("sale_date", "required for historical sales")
	}
	return s.Finalize(watchID, req, actor)
}
