package commands

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/domain/services"
	"freightdesk/internal/core/ports"
)

// DeletePackageCommandHandler handles package removal. Relationships pointing
// at the package (load membership, consolidation links on both sides) are
// detached before the record is deleted, and index entries are removed after.
//
// Commit point: the package record delete. A crash before it leaves the
// package detached but present; a crash after it leaves stale index entries
// and possibly dangling references, all of which the scrub jobs remove.
type DeletePackageCommandHandler struct {
	store    AssignmentStore
	notifier ports.Notifier
	planner  services.IndexPlanner
	logger   *slog.Logger
}

// NewDeletePackageCommandHandler creates a handler for package deletion.
func NewDeletePackageCommandHandler(
	store AssignmentStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) DeletePackageCommandHandler {
	return DeletePackageCommandHandler{
		store:    store,
		notifier: notifier,
		planner:  services.NewIndexPlanner(),
		logger:   logger.With("component", "delete_package_handler"),
	}
}

// Handle processes the package deletion.
// Returns ObjectNotFoundError if the package does not exist.
func (h DeletePackageCommandHandler) Handle(ctx context.Context, cmd DeletePackageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pkg, err := h.store.GetPackage(ctx, cmd.PackageID())
	if err != nil {
		return err
	}

	h.detachFromLoad(ctx, pkg)
	h.detachFromParent(ctx, pkg)
	h.releaseChildren(ctx, pkg)

	// Commit point.
	if err = h.store.DeletePackage(ctx, cmd.PackageID()); err != nil {
		return err
	}

	applyIndexDelta(ctx, h.store, h.logger, h.planner.Plan(pkg, nil))

	h.notifier.PackageDeleted(ctx, cmd.PackageID())

	return nil
}

// detachFromLoad removes the package from its load's membership, if assigned.
// Failures are logged and swallowed; a leftover membership entry for a deleted
// package is exactly what the membership scrub removes.
func (h DeletePackageCommandHandler) detachFromLoad(ctx context.Context, pkg *packages.Package) {
	loadID := pkg.LoadID()
	if loadID == nil {
		return
	}

	l, err := h.store.GetLoad(ctx, *loadID)
	if err != nil {
		h.logger.WarnContext(ctx, "Load not detached during package deletion",
			"package_id", pkg.ID().String(), "load_id", loadID.String(), "error", err)
		return
	}

	l.RemoveMember(pkg.ID())
	if err = h.store.PutLoad(ctx, l); err != nil {
		h.logger.WarnContext(ctx, "Load not detached during package deletion",
			"package_id", pkg.ID().String(), "load_id", loadID.String(), "error", err)
		return
	}

	if err = refreshLoadTotals(ctx, h.store, *loadID); err != nil {
		h.logger.WarnContext(ctx, "Load totals not refreshed during package deletion",
			"load_id", loadID.String(), "error", err)
	}
}

// detachFromParent removes the package from its parent's child list, if
// consolidated. Failures are logged and swallowed; the dangling child
// reference is removed by the consolidation scrub.
func (h DeletePackageCommandHandler) detachFromParent(ctx context.Context, pkg *packages.Package) {
	parentID := pkg.ParentID()
	if parentID == nil {
		return
	}

	parent, err := h.store.GetPackage(ctx, *parentID)
	if err != nil {
		h.logger.WarnContext(ctx, "Parent not detached during package deletion",
			"package_id", pkg.ID().String(), "parent_id", parentID.String(), "error", err)
		return
	}

	parent.RemoveChild(pkg.ID())
	if err = h.store.PutPackage(ctx, parent); err != nil {
		h.logger.WarnContext(ctx, "Parent not detached during package deletion",
			"package_id", pkg.ID().String(), "parent_id", parentID.String(), "error", err)
	}
}

// releaseChildren clears the parent pointer on every child of the package.
func (h DeletePackageCommandHandler) releaseChildren(ctx context.Context, pkg *packages.Package) {
	for _, childID := range pkg.ChildIDs() {
		h.releaseChild(ctx, pkg.ID(), childID)
	}
}

func (h DeletePackageCommandHandler) releaseChild(ctx context.Context, packageID, childID kernel.UUID) {
	child, err := h.store.GetPackage(ctx, childID)
	if err != nil {
		h.logger.WarnContext(ctx, "Child not released during package deletion",
			"package_id", packageID.String(), "child_id", childID.String(), "error", err)
		return
	}

	child.ClearParent()
	if err = h.store.PutPackage(ctx, child); err != nil {
		h.logger.WarnContext(ctx, "Child not released during package deletion",
			"package_id", packageID.String(), "child_id", childID.String(), "error", err)
	}
}
