// Package notify provides the fire-and-forget notification dispatcher. The
// current implementation emits structured log records; swapping in a message
// broker only requires another ports.Notifier implementation.
package notify

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"
)

// SlogNotifier logs every notification. It never blocks and never fails.
type SlogNotifier struct {
	logger *slog.Logger
}

var _ ports.Notifier = (*SlogNotifier)(nil)

// NewSlogNotifier creates a log-backed notifier.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// PackageAssigned announces that a package joined a load.
func (n *SlogNotifier) PackageAssigned(ctx context.Context, packageID, loadID kernel.UUID) {
	n.logger.InfoContext(ctx, "Package assigned",
		"package_id", packageID.String(), "load_id", loadID.String())
}

// PackageUnassigned announces that a package left a load.
func (n *SlogNotifier) PackageUnassigned(ctx context.Context, packageID, loadID kernel.UUID) {
	n.logger.InfoContext(ctx, "Package unassigned",
		"package_id", packageID.String(), "load_id", loadID.String())
}

// ShipmentStatusChanged announces a package status transition.
func (n *SlogNotifier) ShipmentStatusChanged(
	ctx context.Context,
	packageID kernel.UUID,
	from, to packages.ShipmentStatus,
) {
	n.logger.InfoContext(ctx, "Shipment status changed",
		"package_id", packageID.String(), "from", from.String(), "to", to.String())
}

// PackageDeleted announces that a package record was removed.
func (n *SlogNotifier) PackageDeleted(ctx context.Context, packageID kernel.UUID) {
	n.logger.InfoContext(ctx, "Package deleted", "package_id", packageID.String())
}
