// internal/reconcile/apply.go
package reconcile

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/store"
)

// ObjectCleaner removes the stored object behind a media URL. Cleanup is
// best-effort; failures are logged, never propagated.
type ObjectCleaner interface {
	DeleteObjectByURL(url string) error
}

// Apply dispatches the three op classes of a diff concurrently. They are
// mutually independent, but all of them must finish before the owning watch
// write counts as successful, so the caller blocks on the join.
//
// Before any write, ids flagged as inconsistent are checked against the media
// table: an id that exists under a different watch is a cross-watch collision
// and rejects the whole save. An id that exists nowhere stays an insert.
func Apply(watchID uuid.UUID, current []models.WatchMedia, diff Diff, media store.MediaStore, cleaner ObjectCleaner) error {
	for _, inc := range diff.Inconsistencies {
		logrus.WithFields(logrus.Fields{
			"watch_id": watchID,
			"media_id": inc.ItemID,
		}).Warn(inc.Reason)

		id, err := uuid.Parse(inc.ItemID)
		if err != nil {
			continue
		}
		row, err := media.GetByID(id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return apperrors.NewPersistenceError("media_guard", err)
		}
		if row.WatchID != watchID {
			logrus.WithFields(logrus.Fields{
				"watch_id":       watchID,
				"media_id":       inc.ItemID,
				"owner_watch_id": row.WatchID,
			}).Warn("Rejected media item owned by another watch")
			return apperrors.NewValidationError("media", "media item "+inc.ItemID+" belongs to another watch")
		}
	}

	var g errgroup.Group

	if len(diff.Inserts) > 0 {
		inserts := diff.Inserts
		g.Go(func() error {
			for i := range inserts {
				if err := media.Insert(&inserts[i]); err != nil {
					return apperrors.NewPersistenceError("media_insert", err)
				}
			}
			return nil
		})
	}

	if len(diff.Updates) > 0 {
		updates := diff.Updates
		g.Go(func() error {
			for i := range updates {
				if err := media.Update(&updates[i]); err != nil {
					return apperrors.NewPersistenceError("media_update", err)
				}
			}
			return nil
		})
	}

	if len(diff.Deletes) > 0 {
		deletes := diff.Deletes
		g.Go(func() error {
			if err := media.DeleteWhereIn(deletes); err != nil {
				return apperrors.NewPersistenceError("media_delete", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if cleaner != nil && len(diff.Deletes) > 0 {
		urlByID := make(map[uuid.UUID]string, len(current))
		for _, row := range current {
			urlByID[row.ID] = row.URL
		}
		for _, id := range diff.Deletes {
			url, ok := urlByID[id]
			if !ok {
				continue
			}
			if err := cleaner.DeleteObjectByURL(url); err != nil {
				logrus.WithError(err).WithField("url", url).Warn("Failed to clean up stored media object")
			}
		}
	}

	return nil
}
