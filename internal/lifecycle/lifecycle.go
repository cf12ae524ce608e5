// internal/lifecycle/lifecycle.go
package lifecycle

import (
	"github.com/arclux/watchdesk-backend/internal/models"
)

// TransitionKind classifies a submitted status change. Every pair of statuses
// is nominally legal; the kind decides which write path must run.
type TransitionKind int

const (
	// PlainEdit is an ordinary field edit, logged as EDIT_WATCH.
	PlainEdit TransitionKind = iota
	// SaleFinalization means the multi-record sale path must run. A plain
	// status write to Sold is never allowed.
	SaleFinalization
	// SoldReversion is a financially sensitive correction out of Sold. It is
	// committed as a plain edit but logged as REVERT_SOLD_STATUS, never as a
	// generic EDIT_WATCH.
	SoldReversion
)

// Classify maps a (from, to) status pair onto its write path.
func Classify(from, to models.WatchStatus) TransitionKind {
	switch {
	case to == models.WatchStatusSold && from != models.WatchStatusSold:
		return SaleFinalization
	case from == models.WatchStatusSold && to != models.WatchStatusSold:
		return SoldReversion
	default:
		return PlainEdit
	}
}

// ForcePublicRule applies the visibility invariant: a Sold watch is never on
// the public storefront, whatever the operator submitted.
func ForcePublicRule(status models.WatchStatus, submittedPublic bool) bool {
	if status == models.WatchStatusSold {
		return false
	}
	return submittedPublic
}
