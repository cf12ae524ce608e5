// internal/services/activity_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/arclux/watchdesk-backend/internal/models"
)

func TestRecordAppendsEntryWithActor(t *testing.T) {
	store := &fakeActivityStore{}
	svc := NewActivityService(store)
	userID := uuid.New()

	svc.Record(models.ActionCreateWatch, models.JSONB{"ref": "116500LN"}, Actor{
		UserID: &userID,
		Email:  "op@watchdesk.local",
	})

	if assert.Len(t, store.entries, 1) {
		entry := store.entries[0]
		assert.Equal(t, models.ActionCreateWatch, entry.ActionType)
		assert.Equal(t, "op@watchdesk.local", entry.UserEmail)
		assert.Equal(t, &userID, entry.UserID)
		assert.Equal(t, "116500LN", entry.Details["ref"])
	}
}

func TestRecordNeverPanicsOnStoreFailure(t *testing.T) {
	store := &fakeActivityStore{insertErr: errors.New("disk full")}
	svc := NewActivityService(store)

	assert.NotPanics(t, func() {
		svc.Record(models.ActionEditWatch, nil, Actor{})
	})
	assert.Empty(t, store.entries)
}

func TestListFiltersByAction(t *testing.T) {
	store := &fakeActivityStore{}
	svc := NewActivityService(store)
	svc.Record(models.ActionEditWatch, nil, Actor{})
	svc.Record(models.ActionFinalizeSale, nil, Actor{})

	action := models.ActionFinalizeSale
	entries, total, err := svc.List(1, 20, &action)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, models.ActionFinalizeSale, entries[0].ActionType)
	}
}
