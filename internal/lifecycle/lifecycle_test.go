// internal/lifecycle/lifecycle_test.go
package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arclux/watchdesk-backend/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		from models.WatchStatus
		to   models.WatchStatus
		want TransitionKind
	}{
		{"available to reserved", models.WatchStatusAvailable, models.WatchStatusReserved, PlainEdit},
		{"reserved to hidden", models.WatchStatusReserved, models.WatchStatusHidden, PlainEdit},
		{"unchanged available", models.WatchStatusAvailable, models.WatchStatusAvailable, PlainEdit},
		{"unchanged sold", models.WatchStatusSold, models.WatchStatusSold, PlainEdit},
		{"available to sold", models.WatchStatusAvailable, models.WatchStatusSold, SaleFinalization},
		{"reserved to sold", models.WatchStatusReserved, models.WatchStatusSold, SaleFinalization},
		{"hidden to sold", models.WatchStatusHidden, models.WatchStatusSold, SaleFinalization},
		{"sold to available", models.WatchStatusSold, models.WatchStatusAvailable, SoldReversion},
		{"sold to reserved", models.WatchStatusSold, models.WatchStatusReserved, SoldReversion},
		{"sold to hidden", models.WatchStatusSold, models.WatchStatusHidden, SoldReversion},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.from, tc.to))
		})
	}
}

func TestForcePublicRule(t *testing.T) {
	assert.False(t, ForcePublicRule(models.WatchStatusSold, true))
	assert.False(t, ForcePublicRule(models.WatchStatusSold, false))
	assert.True(t, ForcePublicRule(models.WatchStatusAvailable, true))
	assert.False(t, ForcePublicRule(models.WatchStatusAvailable, false))
	assert.True(t, ForcePublicRule(models.WatchStatusHidden, true))
}
