// internal/services/fakes_test.go
package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/store"
)

// In-memory store fakes. Each records its mutations so tests can assert on
// exactly which writes a service performed.

type fakeWatchStore struct {
	mtx         sync.Mutex
	watches     map[uuid.UUID]*models.Watch
	updateCalls []map[string]interface{}
	updatesErr  error
	deleted     []uuid.UUID
}

func newFakeWatchStore(watches ...*models.Watch) *fakeWatchStore {
	byID := make(map[uuid.UUID]*models.Watch, len(watches))
	for _, w := range watches {
		byID[w.ID] = w
	}
	return &fakeWatchStore{watches: byID}
}

func (f *fakeWatchStore) GetByID(id uuid.UUID) (*models.Watch, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	w, ok := f.watches[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *w
	return &clone, nil
}

func (f *fakeWatchStore) List(params store.ListWatchesParams) ([]models.Watch, int64, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	var out []models.Watch
	for _, w := range f.watches {
		if params.PublicOnly && (!w.IsPublic || w.Status == models.WatchStatusSold) {
			continue
		}
		out = append(out, *w)
	}
	return out, int64(len(out)), nil
}

func (f *fakeWatchStore) Create(w *models.Watch) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	clone := *w
	f.watches[w.ID] = &clone
	return nil
}

func (f *fakeWatchStore) Updates(id uuid.UUID, fields map[string]interface{}) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.updatesErr != nil {
		return f.updatesErr
	}
	w, ok := f.watches[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	f.updateCalls = append(f.updateCalls, fields)
	if v, ok := fields["status"]; ok {
		w.Status = v.(models.WatchStatus)
	}
	if v, ok := fields["is_public"]; ok {
		w.IsPublic = v.(bool)
	}
	if v, ok := fields["selling_price"]; ok {
		w.SellingPrice = v.(float64)
	}
	if v, ok := fields["ref"]; ok {
		w.Ref = v.(string)
	}
	if v, ok := fields["brand"]; ok {
		w.Brand = v.(string)
	}
	return nil
}

func (f *fakeWatchStore) Delete(id uuid.UUID) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if _, ok := f.watches[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.watches, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeWatchStore) IncrementViewCount(id uuid.UUID) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if w, ok := f.watches[id]; ok {
		w.ViewCount++
	}
	return nil
}

type fakeInvoiceStore struct {
	mtx       sync.Mutex
	invoices  []models.Invoice
	insertErr error

	deletedByWatch []uuid.UUID
}

func (f *fakeInvoiceStore) GetByID(id uuid.UUID) (*models.Invoice, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			inv := f.invoices[i]
			return &inv, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeInvoiceStore) Insert(inv *models.Invoice) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	inv.ID = uuid.New()
	f.invoices = append(f.invoices, *inv)
	return nil
}

func (f *fakeInvoiceStore) ListByWatch(watchID uuid.UUID) ([]models.Invoice, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	var out []models.Invoice
	for _, inv := range f.invoices {
		if inv.WatchID == watchID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceStore) List(page, limit int) ([]models.Invoice, int64, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return append([]models.Invoice(nil), f.invoices...), int64(len(f.invoices)), nil
}

func (f *fakeInvoiceStore) DeleteByWatch(watchID uuid.UUID) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	kept := f.invoices[:0]
	for _, inv := range f.invoices {
		if inv.WatchID != watchID {
			kept = append(kept, inv)
		}
	}
	f.invoices = kept
	f.deletedByWatch = append(f.deletedByWatch, watchID)
	return nil
}

func (f *fakeInvoiceStore) CountByWatch(watchID uuid.UUID) (int64, error) {
	rows, _ := f.ListByWatch(watchID)
	return int64(len(rows)), nil
}

type fakeCustomerStore struct {
	customers map[uuid.UUID]*models.Customer
}

func newFakeCustomerStore(customers ...*models.Customer) *fakeCustomerStore {
	byID := make(map[uuid.UUID]*models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	return &fakeCustomerStore{customers: byID}
}

func (f *fakeCustomerStore) GetByID(id uuid.UUID) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCustomerStore) List(page, limit int, search string) ([]models.Customer, int64, error) {
	var out []models.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerStore) Create(c *models.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerStore) Update(c *models.Customer) error {
	if _, ok := f.customers[c.ID]; !ok {
		return apperrors.ErrNotFound
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerStore) Delete(id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

type fakeActivityStore struct {
	mtx       sync.Mutex
	entries   []models.ActivityLogEntry
	insertErr error
}

func (f *fakeActivityStore) Insert(entry *models.ActivityLogEntry) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	entry.ID = uuid.New()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeActivityStore) List(page, limit int, actionType *models.ActionType) ([]models.ActivityLogEntry, int64, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	var out []models.ActivityLogEntry
	for _, e := range f.entries {
		if actionType != nil && e.ActionType != *actionType {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeActivityStore) byAction(action models.ActionType) []models.ActivityLogEntry {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	var out []models.ActivityLogEntry
	for _, e := range f.entries {
		if e.ActionType == action {
			out = append(out, e)
		}
	}
	return out
}

type fakeServiceMediaStore struct {
	mtx  sync.Mutex
	rows map[uuid.UUID]models.WatchMedia
}

func newFakeServiceMediaStore() *fakeServiceMediaStore {
	return &fakeServiceMediaStore{rows: make(map[uuid.UUID]models.WatchMedia)}
}

func (f *fakeServiceMediaStore) ListByWatch(watchID uuid.UUID) ([]models.WatchMedia, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	var out []models.WatchMedia
	for _, r := range f.rows {
		if r.WatchID == watchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeServiceMediaStore) GetByID(id uuid.UUID) (*models.WatchMedia, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if r, ok := f.rows[id]; ok {
		return &r, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeServiceMediaStore) Insert(m *models.WatchMedia) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	m.ID = uuid.New()
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeServiceMediaStore) Update(m *models.WatchMedia) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.rows[m.ID] = *m
	return nil
}

func (f *fakeServiceMediaStore) DeleteWhereIn(ids []uuid.UUID) error {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	for _, id := range ids {
		delete(f.rows, id)
	}
	return nil
}
