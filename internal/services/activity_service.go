// internal/services/activity_service.go
package services

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/store"
)

// Actor identifies who performed a mutation. A zero Actor is the unknown
// (unauthenticated) actor.
type Actor struct {
	UserID *uuid.UUID
	Email  string
}

// ActivityService is the audit log recorder. Record never raises to the
// mutating operation it instruments: a mutation succeeds or fails on its own,
// and every failure to record is reported to the observability collaborator
// instead.
type ActivityService struct {
	activities store.ActivityStore
}

func NewActivityService(activities store.ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

// Record appends one entry. Details must carry enough denormalized identity
// (the watch ref in particular) to reconstruct what happened without joining
// back to tables whose rows may have changed or been deleted since.
func (s *ActivityService) Record(action models.ActionType, details models.JSONB, actor Actor) {
	entry := &models.ActivityLogEntry{
		UserID:     actor.UserID,
		UserEmail:  actor.Email,
		ActionType: action,
		Details:    details,
	}

	if err := s.activities.Insert(entry); err != nil {
		failure := &apperrors.AuditWriteFailure{Action: string(action), Err: err}
		logrus.WithError(failure).WithFields(logrus.Fields{
			"action_type": action,
			"user_email":  actor.Email,
		}).Error("Audit log write failed")
	}
}

// List exposes the trail to reporting collaborators.
func (s *ActivityService) List(page, limit int, actionType *models.ActionType) ([]models.ActivityLogEntry, int64, error) {
	return s.activities.List(page, limit, actionType)
}
