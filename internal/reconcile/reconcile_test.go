// internal/reconcile/reconcile_test.go
package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/arclux/watchdesk-backend/internal/models"
)

func mediaRow(id uuid.UUID, watchID uuid.UUID, url string, position int) models.WatchMedia {
	return models.WatchMedia{
		ID:       id,
		WatchID:  watchID,
		URL:      url,
		Type:     models.MediaTypeImage,
		Position: position,
	}
}

func TestDisplayListOrdering(t *testing.T) {
	watchID := uuid.New()
	rows := []models.WatchMedia{
		mediaRow(uuid.New(), watchID, "second", 1),
		mediaRow(uuid.New(), watchID, "first", 0),
	}

	items := DisplayList(rows, []string{"legacy-a", "legacy-b"}, "legacy-video")

	assert.Len(t, items, 5)
	assert.Equal(t, "first", items[0].URL)
	assert.Equal(t, "second", items[1].URL)
	assert.Equal(t, "legacy-a", items[2].URL)
	assert.Equal(t, "legacy-b", items[3].URL)
	assert.Equal(t, "legacy-video", items[4].URL)
	assert.Equal(t, models.MediaTypeVideo, items[4].Type)
}

func TestDisplayListLegacyItemsHaveNoRowID(t *testing.T) {
	items := DisplayList(nil, []string{"a"}, "v")

	for _, item := range items {
		assert.Nil(t, item.ID)
		assert.True(t, item.Legacy)
	}
	// Synthetic positions are sequential.
	assert.Equal(t, 0, items[0].Position)
	assert.Equal(t, 1, items[1].Position)
}

func TestDisplayListStableForEqualPositions(t *testing.T) {
	watchID := uuid.New()
	rows := []models.WatchMedia{
		mediaRow(uuid.New(), watchID, "a", 0),
		mediaRow(uuid.New(), watchID, "b", 0),
		mediaRow(uuid.New(), watchID, "c", 0),
	}

	items := DisplayList(rows, nil, "")

	assert.Equal(t, "a", items[0].URL)
	assert.Equal(t, "b", items[1].URL)
	assert.Equal(t, "c", items[2].URL)
}

func TestComputeDiffRoundTrip(t *testing.T) {
	watchID := uuid.New()
	id1, id2 := uuid.New(), uuid.New()
	current := []models.WatchMedia{
		mediaRow(id1, watchID, "a", 0),
		mediaRow(id2, watchID, "b", 1),
	}
	desired := []Item{
		{ID: &id1, URL: "a", Type: models.MediaTypeImage, Position: 0},
		{URL: "c", Type: models.MediaTypeImage, Position: 1},
	}

	diff := ComputeDiff(watchID, current, desired)

	assert.Empty(t, diff.Updates)
	assert.Len(t, diff.Inserts, 1)
	assert.Equal(t, "c", diff.Inserts[0].URL)
	assert.Equal(t, []uuid.UUID{id2}, diff.Deletes)
	assert.Empty(t, diff.Inconsistencies)
}

func TestComputeDiffIdempotent(t *testing.T) {
	watchID := uuid.New()
	id1, id2 := uuid.New(), uuid.New()
	current := []models.WatchMedia{
		mediaRow(id1, watchID, "a", 0),
		mediaRow(id2, watchID, "b", 1),
	}
	desired := []Item{
		{ID: &id1, URL: "a", Type: models.MediaTypeImage, Position: 0},
		{ID: &id2, URL: "b", Type: models.MediaTypeImage, Position: 1},
	}

	diff := ComputeDiff(watchID, current, desired)

	assert.True(t, diff.Empty())
	assert.Empty(t, diff.Inconsistencies)
}

func TestComputeDiffDetectsChangedFields(t *testing.T) {
	watchID := uuid.New()
	id1 := uuid.New()
	current := []models.WatchMedia{mediaRow(id1, watchID, "a", 0)}
	desired := []Item{{ID: &id1, URL: "a-edited", Type: models.MediaTypeImage, Position: 2}}

	diff := ComputeDiff(watchID, current, desired)

	assert.Len(t, diff.Updates, 1)
	assert.Equal(t, "a-edited", diff.Updates[0].URL)
	assert.Equal(t, 2, diff.Updates[0].Position)
	assert.Empty(t, diff.Inserts)
	assert.Empty(t, diff.Deletes)
}

func TestComputeDiffEmptyDesiredDeletesAll(t *testing.T) {
	watchID := uuid.New()
	id1, id2 := uuid.New(), uuid.New()
	current := []models.WatchMedia{
		mediaRow(id1, watchID, "a", 0),
		mediaRow(id2, watchID, "b", 1),
	}

	diff := ComputeDiff(watchID, current, nil)

	assert.Len(t, diff.Deletes, 2)
	assert.Empty(t, diff.Inserts)
	assert.Empty(t, diff.Updates)
}

func TestComputeDiffUnknownIDBecomesInsertWithFlag(t *testing.T) {
	watchID := uuid.New()
	ghost := uuid.New()
	desired := []Item{{ID: &ghost, URL: "ghost", Type: models.MediaTypeImage, Position: 0}}

	diff := ComputeDiff(watchID, nil, desired)

	assert.Len(t, diff.Inserts, 1)
	assert.Equal(t, "ghost", diff.Inserts[0].URL)
	assert.Len(t, diff.Inconsistencies, 1)
	assert.Equal(t, ghost.String(), diff.Inconsistencies[0].ItemID)
}
