package commands

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/domain/services"
	"freightdesk/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler handles shipment status transitions.
// The status index is moved to the new key after the record write, so a crash
// between the two leaves the status index one step behind until reconciliation
// catches up.
//
// Commit point: the package record write.
type UpdateShipmentStatusCommandHandler struct {
	store    PackageIndexStore
	notifier ports.Notifier
	planner  services.IndexPlanner
	logger   *slog.Logger
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status updates.
func NewUpdateShipmentStatusCommandHandler(
	store PackageIndexStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		store:    store,
		notifier: notifier,
		planner:  services.NewIndexPlanner(),
		logger:   logger.With("component", "update_shipment_status_handler"),
	}
}

// Handle processes the status change.
// Returns the updated package, or ValueIsInvalidError when the transition is
// not allowed from the package's current status.
func (h UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*packages.Package, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pkg, err := h.store.GetPackage(ctx, cmd.PackageID())
	if err != nil {
		return nil, err
	}

	if pkg.Status() == cmd.Status() {
		return pkg, nil
	}

	before := pkg.Clone()
	previous := pkg.Status()

	if err = pkg.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	// Commit point.
	if err = h.store.PutPackage(ctx, pkg); err != nil {
		return nil, err
	}

	applyIndexDelta(ctx, h.store, h.logger, h.planner.Plan(before, pkg))

	h.notifier.ShipmentStatusChanged(ctx, pkg.ID(), previous, pkg.Status())

	return pkg, nil
}
