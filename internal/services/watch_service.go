// internal/services/watch_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/lifecycle"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/reconcile"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
	"github.com/arclux/watchdesk-backend/internal/valuation"
)

type WatchService struct {
	watches    store.WatchStore
	media      store.MediaStore
	invoices   store.InvoiceStore
	activity   *ActivityService
	calculator valuation.Calculator
	cleaner    reconcile.ObjectCleaner
}

func NewWatchService(watches store.WatchStore, media store.MediaStore, invoices store.InvoiceStore,
	activity *ActivityService, calculator valuation.Calculator, cleaner reconcile.ObjectCleaner) *WatchService {
	return &WatchService{
		watches:    watches,
		media:      media,
		invoices:   invoices,
		activity:   activity,
		calculator: calculator,
		cleaner:    cleaner,
	}
}

type MediaItemRequest struct {
	ID       *uuid.UUID       `json:"id,omitempty"`
	URL      string           `json:"url" validate:"required"`
	Type     models.MediaType `json:"type,omitempty" validate:"omitempty,oneof=image video"`
	Position *int             `json:"position,omitempty"`
}

type WatchFormRequest struct {
	Brand          string               `json:"brand" validate:"required,max=100"`
	Ref            string               `json:"ref" validate:"required,max=100"`
	Model          string               `json:"model" validate:"max=255"`
	Year           int                  `json:"year" validate:"omitempty,min=1900,max=2100"`
	SerialNo       string               `json:"serial_no" validate:"max=100"`
	ProductType    string               `json:"product_type" validate:"max=50"`
	SetType        map[string]bool      `json:"set_type,omitempty"`
	CostPrice      float64              `json:"cost_price" validate:"min=0"`
	SellingPrice   float64              `json:"selling_price" validate:"min=0"`
	Currency       string               `json:"currency" validate:"max=10"`
	OwnershipType  models.OwnershipType `json:"ownership_type" validate:"omitempty,oneof=stock commission"`
	CommissionRate float64              `json:"commission_rate" validate:"min=0,max=100"`
	OwnerName      string               `json:"owner_name" validate:"max=255"`
	OwnerContact   string               `json:"owner_contact" validate:"max=255"`
	Status         models.WatchStatus   `json:"status" validate:"omitempty,oneof=Available Reserved Sold Hidden"`
	IsPublic       bool                 `json:"is_public"`
	Media          []MediaItemRequest   `json:"media,omitempty"`
}

// WatchView is the read shape: the record plus its derived valuation and the
// merged gallery. Valuation is recomputed on every read, never read back from
// storage as truth.
type WatchView struct {
	Watch     *models.Watch       `json:"watch"`
	Valuation valuation.Valuation `json:"valuation"`
	Gallery   []reconcile.Item    `json:"gallery"`
}

// validateOwnershipFields rejects payloads whose commission or stock fields
// contradict the declared ownership type.
func validateOwnershipFields(req *WatchFormRequest) error {
	if req.OwnershipType == models.OwnershipTypeCommission {
		if req.OwnerName == "" {
			return apperrors.NewValidationError("owner_name", "required for commission watches")
		}
		return nil
	}
	if req.CommissionRate > 0 || req.OwnerName != "" || req.OwnerContact != "" {
		return apperrors.NewValidationError("ownership_type", "commission fields supplied for a stock watch")
	}
	return nil
}

func (s *WatchService) Create(req *WatchFormRequest, actor Actor) (*WatchView, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.OwnershipType == "" {
		req.OwnershipType = models.OwnershipTypeStock
	}
	if err := validateOwnershipFields(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.WatchStatusAvailable
	}
	if status == models.WatchStatusSold {
		return nil, apperrors.NewValidationError("status", "a watch cannot be created as Sold; finalize a sale instead")
	}

	watch := &models.Watch{
		Brand:          req.Brand,
		Ref:            req.Ref,
		Model:          req.Model,
		Year:           req.Year,
		SerialNo:       req.SerialNo,
		ProductType:    req.ProductType,
		SetType:        boolMapToJSONB(req.SetType),
		CostPrice:      req.CostPrice,
		SellingPrice:   req.SellingPrice,
		Currency:       defaultCurrency(req.Currency),
		OwnershipType:  req.OwnershipType,
		CommissionRate: req.CommissionRate,
		OwnerName:      req.OwnerName,
		OwnerContact:   req.OwnerContact,
		Status:         status,
		IsPublic:       lifecycle.ForcePublicRule(status, req.IsPublic),
	}
	annotated := s.annotate(watch)
	watch.CommissionAmount = commissionAmount(watch, annotated)

	if err := s.watches.Create(watch); err != nil {
		return nil, apperrors.NewPersistenceError("watch_insert", err)
	}

	view := &WatchView{Watch: watch, Valuation: annotated}
	if req.Media != nil {
		gallery, err := s.reconcileMedia(watch, req.Media)
		if err != nil {
			// The watch itself is saved; the caller must see that only the
			// media step failed.
			return view, err
		}
		view.Gallery = gallery
	}

	s.activity.Record(models.ActionCreateWatch, models.JSONB{
		"watchId": watch.ID.String(),
		"ref":     watch.Ref,
		"brand":   watch.Brand,
	}, actor)

	return view, nil
}

func (s *WatchService) Get(id uuid.UUID, countView bool) (*WatchView, error) {
	watch, err := s.watches.GetByID(id)
	if err != nil {
		return nil, err
	}

	if countView {
		go s.watches.IncrementViewCount(id)
	}

	return &WatchView{
		Watch:     watch,
		Valuation: s.annotate(watch),
		Gallery:   reconcile.DisplayList(watch.Media, watch.LegacyImagesURL, watch.LegacyVideoURL),
	}, nil
}

// Update applies a plain edit or a Sold reversion. A transition into Sold is
// never committed here; callers are pointed at the finalization path.
func (s *WatchService) Update(id uuid.UUID, req *WatchFormRequest, actor Actor) (*WatchView, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.OwnershipType == "" {
		req.OwnershipType = models.OwnershipTypeStock
	}
	if err := validateOwnershipFields(req); err != nil {
		return nil, err
	}

	current, err := s.watches.GetByID(id)
	if err != nil {
		return nil, err
	}

	newStatus := req.Status
	if newStatus == "" {
		newStatus = current.Status
	}

	kind := lifecycle.Classify(current.Status, newStatus)
	if kind == lifecycle.SaleFinalization {
		return nil, apperrors.NewValidationError("status", "transition to Sold must go through sale finalization")
	}

	fields := s.editableFields(req, newStatus)
	if err := s.watches.Updates(id, fields); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewPersistenceError("watch_update", err)
	}

	var mediaErr error
	var gallery []reconcile.Item
	if req.Media != nil {
		gallery, mediaErr = s.reconcileMedia(current, req.Media)
	}

	// A reversion out of Sold gets its own audit entry, never a generic edit
	// entry on top.
	if kind == lifecycle.SoldReversion {
		s.activity.Record(models.ActionRevertSoldStatus, models.JSONB{
			"watchId": id.String(),
			"ref":     req.Ref,
			"from":    string(current.Status),
			"to":      string(newStatus),
		}, actor)
	} else {
		s.activity.Record(models.ActionEditWatch, models.JSONB{
			"watchId": id.String(),
			"ref":     req.Ref,
		}, actor)
	}

	updated, err := s.watches.GetByID(id)
	if err != nil {
		return nil, err
	}
	view := &WatchView{Watch: updated, Valuation: s.annotate(updated)}
	if req.Media != nil {
		view.Gallery = gallery
	} else {
		view.Gallery = reconcile.DisplayList(updated.Media, updated.LegacyImagesURL, updated.LegacyVideoURL)
	}

	if mediaErr != nil {
		// Watch fields are saved; only the media step failed.
		return view, mediaErr
	}
	return view, nil
}

func (s *WatchService) TogglePublic(id uuid.UUID, actor Actor) (*models.Watch, error) {
	watch, err := s.watches.GetByID(id)
	if err != nil {
		return nil, err
	}

	target := !watch.IsPublic
	if target && watch.Status == models.WatchStatusSold {
		return nil, apperrors.NewValidationError("is_public", "a Sold watch cannot be public")
	}

	if err := s.watches.Updates(id, map[string]interface{}{"is_public": target}); err != nil {
		return nil, apperrors.NewPersistenceError("watch_update", err)
	}
	watch.IsPublic = target

	s.activity.Record(models.ActionTogglePublic, models.JSONB{
		"watchId":  id.String(),
		"ref":      watch.Ref,
		"isPublic": target,
	}, actor)

	return watch, nil
}

// Delete hard-deletes a watch. Dependent invoices go first; media rows cascade
// with the watch.
func (s *WatchService) Delete(id uuid.UUID, actor Actor) error {
	watch, err := s.watches.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.invoices.DeleteByWatch(id); err != nil {
		return apperrors.NewPersistenceError("invoice_delete", err)
	}
	if err := s.watches.Delete(id); err != nil {
		return apperrors.NewPersistenceError("watch_delete", err)
	}

	s.activity.Record(models.ActionDeleteWatch, models.JSONB{
		"watchId": id.String(),
		"ref":     watch.Ref,
		"brand":   watch.Brand,
	}, actor)

	return nil
}

func (s *WatchService) List(params store.ListWatchesParams) ([]WatchView, int64, error) {
	watches, total, err := s.watches.List(params)
	if err != nil {
		return nil, 0, err
	}

	views := make([]WatchView, 0, len(watches))
	for i := range watches {
		w := &watches[i]
		views = append(views, WatchView{
			Watch:     w,
			Valuation: s.annotate(w),
			Gallery:   reconcile.DisplayList(w.Media, w.LegacyImagesURL, w.LegacyVideoURL),
		})
	}
	return views, total, nil
}

func (s *WatchService) annotate(w *models.Watch) valuation.Valuation {
	return valuation.ForWatch(w, s.calculator)
}

// reconcileMedia runs the display-list diff against the desired submission and
// applies it. All sub-operations join before this returns.
func (s *WatchService) reconcileMedia(watch *models.Watch, desired []MediaItemRequest) ([]reconcile.Item, error) {
	current, err := s.media.ListByWatch(watch.ID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("media_list", err)
	}

	items := make([]reconcile.Item, 0, len(desired))
	for idx, d := range desired {
		mediaType := d.Type
		if mediaType == "" {
			mediaType = models.MediaTypeImage
		}
		position := idx
		if d.Position != nil {
			position = *d.Position
		}
		items = append(items, reconcile.Item{
			ID:       d.ID,
			URL:      d.URL,
			Type:     mediaType,
			Position: position,
		})
	}

	diff := reconcile.ComputeDiff(watch.ID, current, items)
	if err := reconcile.Apply(watch.ID, current, diff, s.media, s.cleaner); err != nil {
		return nil, err
	}

	rows, err := s.media.ListByWatch(watch.ID)
	if err != nil {
		return nil, apperrors.NewPersistenceError("media_list", err)
	}
	return reconcile.DisplayList(rows, watch.LegacyImagesURL, watch.LegacyVideoURL), nil
}

func (s *WatchService) editableFields(req *WatchFormRequest, status models.WatchStatus) map[string]interface{} {
	fields := map[string]interface{}{
		"brand":           req.Brand,
		"ref":             req.Ref,
		"model":           req.Model,
		"year":            req.Year,
		"serial_no":       req.SerialNo,
		"product_type":    req.ProductType,
		"set_type":        boolMapToJSONB(req.SetType),
		"cost_price":      req.CostPrice,
		"selling_price":   req.SellingPrice,
		"currency":        defaultCurrency(req.Currency),
		"ownership_type":  req.OwnershipType,
		"commission_rate": req.CommissionRate,
		"owner_name":      req.OwnerName,
		"owner_contact":   req.OwnerContact,
		"status":          status,
		"is_public":       lifecycle.ForcePublicRule(status, req.IsPublic),
	}

	probe := &models.Watch{
		OwnershipType:  req.OwnershipType,
		SellingPrice:   req.SellingPrice,
		CostPrice:      req.CostPrice,
		CommissionRate: req.CommissionRate,
	}
	fields["commission_amount"] = commissionAmount(probe, s.annotate(probe))

	return fields
}

func commissionAmount(w *models.Watch, v valuation.Valuation) float64 {
	if w.OwnershipType == models.OwnershipTypeCommission && v.Status == valuation.StatusCommission {
		return v.Amount
	}
	return 0
}

func boolMapToJSONB(m map[string]bool) models.JSONB {
	if m == nil {
		return nil
	}
	out := make(models.JSONB, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func defaultCurrency(c string) string {
	if c == "" {
		return "USD"
	}
	return c
}

// DiagnoseStep renders a step-tagged persistence failure into a caller-facing
// hint so "not saved" and "saved, secondary step failed" never read the same.
func DiagnoseStep(err error) string {
	if step := apperrors.PersistenceStep(err); step != "" {
		return fmt.Sprintf("failed at step %q", step)
	}
	return ""
}
