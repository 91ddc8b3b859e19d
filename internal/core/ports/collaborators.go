package ports

import (
	"context"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
)

// CustomerDirectory is the customer-existence collaborator consumed by package
// creation. The core never mutates customers; it only checks that a referenced
// customer exists before accepting a package for it.
type CustomerDirectory interface {
	// CustomerExists reports whether the customer id resolves.
	CustomerExists(ctx context.Context, id kernel.UUID) (bool, error)
}

// Notifier dispatches fire-and-forget notifications after a mutation has
// committed. Implementations must never block the caller on delivery, and
// delivery failures are logged and swallowed; they never surface as the
// operation's result.
type Notifier interface {
	// PackageAssigned announces that a package joined a load.
	PackageAssigned(ctx context.Context, packageID, loadID kernel.UUID)

	// PackageUnassigned announces that a package left a load.
	PackageUnassigned(ctx context.Context, packageID, loadID kernel.UUID)

	// ShipmentStatusChanged announces a package status transition.
	ShipmentStatusChanged(ctx context.Context, packageID kernel.UUID, from, to packages.ShipmentStatus)

	// PackageDeleted announces that a package record was removed.
	PackageDeleted(ctx context.Context, packageID kernel.UUID)
}
