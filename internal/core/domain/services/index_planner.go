package services

import (
	"freightdesk/internal/core/domain/model/packages"
)

// IndexDelta is the set of secondary-index writes a package mutation requires:
// deletes for entries implied only by the before snapshot, and puts for entries
// implied only by the after snapshot. Entries implied by both snapshots appear
// in neither list.
//
// The delta is commutative: applying Puts and Removes in any order yields the
// same index state, because an entry never appears in both lists.
type IndexDelta struct {
	Removes []packages.IndexEntry
	Puts    []packages.IndexEntry
}

// IsEmpty reports whether the mutation requires no index writes at all.
func (d IndexDelta) IsEmpty() bool {
	return len(d.Removes) == 0 && len(d.Puts) == 0
}

// IndexPlanner computes which secondary-index entries a package mutation
// invalidates and which it introduces. It is a pure domain service: handlers
// snapshot a package before mutating it, then ask the planner for the delta
// between the snapshots and apply the resulting writes after the primary
// record commit.
//
// Planning is idempotent: identical before and after snapshots produce an
// empty delta, so replaying a mutation issues no index writes. nil snapshots
// model creation (nil before: everything is a put) and deletion (nil after:
// everything is a remove).
//
// Example usage:
//
//	before := pkg.Clone()
//	pkg.ChangeStatus(packages.StatusInTransit)
//	delta := services.NewIndexPlanner().Plan(before, pkg)
//	// delta.Removes: the stale status entry
//	// delta.Puts:    the new status entry
type IndexPlanner struct{}

// NewIndexPlanner creates a new IndexPlanner instance.
func NewIndexPlanner() IndexPlanner {
	return IndexPlanner{}
}

// Plan returns the symmetric difference of the index entries implied by the
// before and after snapshots.
//
// Parameters:
//   - before: The package state prior to the mutation (nil for creation)
//   - after: The package state after the mutation (nil for deletion)
//
// Returns an empty delta when both snapshots imply the same entries, including
// the degenerate case where both are nil.
func (IndexPlanner) Plan(before, after *packages.Package) IndexDelta {
	var beforeEntries, afterEntries []packages.IndexEntry
	if before != nil {
		beforeEntries = packages.IndexEntriesOf(before)
	}
	if after != nil {
		afterEntries = packages.IndexEntriesOf(after)
	}

	return IndexDelta{
		Removes: entriesOnlyIn(beforeEntries, afterEntries),
		Puts:    entriesOnlyIn(afterEntries, beforeEntries),
	}
}

// entriesOnlyIn returns the entries of a that have no equal entry in b,
// preserving a's order.
func entriesOnlyIn(a, b []packages.IndexEntry) []packages.IndexEntry {
	var out []packages.IndexEntry
	for _, entry := range a {
		found := false
		for _, other := range b {
			if entry.IsEqual(other) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, entry)
		}
	}
	return out
}
