// Package commands contains the business operations that mutate the shipment
// entity graph. Each operation is a command/handler pair: the command carries
// validated input, the handler orchestrates store reads, aggregate mutations,
// and index maintenance.
//
// None of the handlers relies on multi-record atomicity. Every handler performs
// one primary-record write as its commit point; writes before it leave only
// garbage the scrub sweeps remove, and writes after it (index entries, the far
// side of a relationship, cached totals) are applied best-effort and repaired
// by the reconciliation operations if a step is lost.
package commands

import (
	"freightdesk/internal/core/ports"
)

// Store surfaces consumed by the command handlers. Declaring them narrow here
// keeps each handler's storage footprint explicit and mockable.
type (
	// PackageIndexStore covers mutations that touch package records and their
	// secondary indexes only.
	PackageIndexStore interface {
		ports.PackageStore
		ports.IndexStore
	}

	// AssignmentStore adds load access for assignment and deletion flows.
	AssignmentStore interface {
		ports.PackageStore
		ports.LoadStore
		ports.IndexStore
	}
)
