// internal/reconcile/reconcile.go
package reconcile

import (
	"sort"

	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
)

// Item is the canonical in-memory shape for one gallery entry. Relational
// rows, legacy flat fields and operator submissions all normalize into it
// before any business rule runs. A nil ID means the item is not a persisted
// row: either a legacy placeholder or a new upload.
type Item struct {
	ID       *uuid.UUID       `json:"id,omitempty"`
	Legacy   bool             `json:"legacy,omitempty"`
	URL      string           `json:"url"`
	Type     models.MediaType `json:"type"`
	Position int              `json:"position"`
}

// DisplayList merges the relational rows with the legacy flat fields into the
// single ordered gallery: rows first (by position, ties keep relative order),
// then legacy images in original array order, then the legacy video. Legacy
// entries get synthetic sequential positions and no row id, so nothing
// downstream can mistake them for updatable rows.
func DisplayList(rows []models.WatchMedia, legacyImages []string, legacyVideo string) []Item {
	sorted := make([]models.WatchMedia, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	items := make([]Item, 0, len(sorted)+len(legacyImages)+1)
	for _, row := range sorted {
		id := row.ID
		items = append(items, Item{
			ID:       &id,
			URL:      row.URL,
			Type:     row.Type,
			Position: row.Position,
		})
	}

	next := len(items)
	for _, url := range legacyImages {
		items = append(items, Item{
			Legacy:   true,
			URL:      url,
			Type:     models.MediaTypeImage,
			Position: next,
		})
		next++
	}

	if legacyVideo != "" {
		items = append(items, Item{
			Legacy:   true,
			URL:      legacyVideo,
			Type:     models.MediaTypeVideo,
			Position: next,
		})
	}

	return items
}

// Diff is the write plan for one reconciliation pass.
type Diff struct {
	Inserts []models.WatchMedia
	Updates []models.WatchMedia
	Deletes []uuid.UUID

	// Inconsistencies lists desired items whose id matched no current row.
	// Each is also present in Inserts; the flag exists so the caller can log
	// the mismatch instead of silently dropping or fabricating state.
	Inconsistencies []apperrors.ReconciliationInconsistency
}

func (d Diff) Empty() bool {
	return len(d.Inserts) == 0 && len(d.Updates) == 0 && len(d.Deletes) == 0
}

// ComputeDiff compares the current rows of a watch against the desired list
// the operator submitted. Single pass over an id-keyed lookup: items carrying
// an id are kept rows (updated only when url, type or position changed), items
// without one are new uploads, and current rows absent from the desired id set
// are deleted. An unknown id becomes an insert plus an inconsistency flag.
// Callers resolve a missing submitted position to the item's index in the
// desired list before building Items.
func ComputeDiff(watchID uuid.UUID, current []models.WatchMedia, desired []Item) Diff {
	byID := make(map[uuid.UUID]models.WatchMedia, len(current))
	for _, row := range current {
		byID[row.ID] = row
	}

	var diff Diff
	kept := make(map[uuid.UUID]bool, len(desired))

	for _, item := range desired {
		if item.ID == nil {
			diff.Inserts = append(diff.Inserts, models.WatchMedia{
				WatchID:  watchID,
				URL:      item.URL,
				Type:     item.Type,
				Position: item.Position,
			})
			continue
		}

		row, exists := byID[*item.ID]
		if !exists {
			diff.Inserts = append(diff.Inserts, models.WatchMedia{
				WatchID:  watchID,
				URL:      item.URL,
				Type:     item.Type,
				Position: item.Position,
			})
			diff.Inconsistencies = append(diff.Inconsistencies, apperrors.ReconciliationInconsistency{
				ItemID: item.ID.String(),
				Reason: "desired item references an id not present in current rows, treated as insert",
			})
			continue
		}

		kept[*item.ID] = true
		if row.URL != item.URL || row.Type != item.Type || row.Position != item.Position {
			row.URL = item.URL
			row.Type = item.Type
			row.Position = item.Position
			diff.Updates = append(diff.Updates, row)
		}
	}

	for _, row := range current {
		if !kept[row.ID] {
			diff.Deletes = append(diff.Deletes, row.ID)
		}
	}

	return diff
}
