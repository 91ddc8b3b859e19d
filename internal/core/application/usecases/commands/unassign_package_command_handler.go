package commands

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/ports"
)

// UnassignPackageCommandHandler takes a package off its current load: clears
// the package's load reference, removes it from the load's membership, and
// refreshes the vacated load's totals.
//
// Commit point: the package write clearing the load reference. Membership
// removal and the totals refresh happen after it; a crash in between leaves a
// phantom member the scrub pass removes.
type UnassignPackageCommandHandler struct {
	store    AssignmentStore
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewUnassignPackageCommandHandler creates the unassignment handler.
func NewUnassignPackageCommandHandler(
	store AssignmentStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) UnassignPackageCommandHandler {
	return UnassignPackageCommandHandler{
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "unassign_package_handler"),
	}
}

// Handle processes the unassignment. Unassigning a package that is not on any
// load is a no-op success, keeping the operation idempotent.
func (h UnassignPackageCommandHandler) Handle(ctx context.Context, cmd UnassignPackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pkg, err := h.store.GetPackage(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	loadID := pkg.LoadID()
	if loadID == nil {
		return nil
	}

	pkg.Unassign()

	// Commit point.
	if err = h.store.PutPackage(ctx, pkg); err != nil {
		return err
	}

	// Post-commit: remove the membership entry and refresh totals.
	vacated, err := h.store.GetLoad(ctx, *loadID)
	if err != nil {
		h.logger.WarnContext(ctx, "Vacated load not detached",
			"package_id", cmd.PackageID().String(), "load_id", loadID.String(), "error", err)
	} else {
		vacated.RemoveMember(cmd.PackageID())
		if err = h.store.PutLoad(ctx, vacated); err != nil {
			h.logger.WarnContext(ctx, "Vacated load not detached",
				"package_id", cmd.PackageID().String(), "load_id", loadID.String(), "error", err)
		} else if err = refreshLoadTotals(ctx, h.store, *loadID); err != nil {
			h.logger.WarnContext(ctx, "Vacated load totals not refreshed",
				"load_id", loadID.String(), "error", err)
		}
	}

	h.notifier.PackageUnassigned(ctx, cmd.PackageID(), *loadID)
	return nil
}
