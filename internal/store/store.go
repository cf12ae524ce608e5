// internal/store/store.go
package store

import (
	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/models"
)

// The engine talks to persistence through these interfaces. The GORM
// implementations below are the production wiring; tests substitute fakes.

type ListWatchesParams struct {
	Page       int
	Limit      int
	Sort       string
	Order      string
	Search     string
	Brand      string
	Status     *models.WatchStatus
	Ownership  *models.OwnershipType
	PublicOnly bool
}

type WatchStore interface {
	GetByID(id uuid.UUID) (*models.Watch, error)
	List(params ListWatchesParams) ([]models.Watch, int64, error)
	Create(w *models.Watch) error
	Updates(id uuid.UUID, fields map[string]interface{}) error
	Delete(id uuid.UUID) error
	IncrementViewCount(id uuid.UUID) error
}

type MediaStore interface {
	ListByWatch(watchID uuid.UUID) ([]models.WatchMedia, error)
	GetByID(id uuid.UUID) (*models.WatchMedia, error)
	Insert(m *models.WatchMedia) error
	Update(m *models.WatchMedia) error
	DeleteWhereIn(ids []uuid.UUID) error
}

type CustomerStore interface {
	GetByID(id uuid.UUID) (*models.Customer, error)
	List(page, limit int, search string) ([]models.Customer, int64, error)
	Create(c *models.Customer) error
	Update(c *models.Customer) error
	Delete(id uuid.UUID) error
}

type InvoiceStore interface {
	GetByID(id uuid.UUID) (*models.Invoice, error)
	Insert(inv *models.Invoice) error
	ListByWatch(watchID uuid.UUID) ([]models.Invoice, error)
	List(page, limit int) ([]models.Invoice, int64, error)
	DeleteByWatch(watchID uuid.UUID) error
	CountByWatch(watchID uuid.UUID) (int64, error)
}

type ActivityStore interface {
	Insert(entry *models.ActivityLogEntry) error
	List(page, limit int, actionType *models.ActionType) ([]models.ActivityLogEntry, int64, error)
}

type OperatorStore interface {
	GetByEmail(email string) (*models.Operator, error)
	Create(op *models.Operator) error
}
