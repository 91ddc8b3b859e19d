package commands

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// AssignPackagesCommandHandler is the bulk operation coordinator for load
// assignment. Each package id is an independent unit of work: one id's failure
// never aborts the rest, successes are never rolled back, and the result
// reports both sets so callers can retry the failures.
//
// Per id, in order: resolve the package (NotFound), apply the optional
// assign-only-if-unassigned guard (AlreadyAssigned), append the id to the
// target load's membership, write the package with the new load reference
// (commit point), then detach it from the prior load and refresh both loads'
// totals. A crash before the commit point leaves only a phantom member in the
// target membership; a crash after it leaves one in the prior membership.
// Both are garbage the membership scrub removes, never a corrupt package.
//
// Membership updates are read-modify-write with the read taken immediately
// before the write. Two racing assigns of the same package resolve
// last-write-wins on the package record; the loser's leftover membership entry
// is exactly the phantom the scrub pass is for.
type AssignPackagesCommandHandler struct {
	store    AssignmentStore
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewAssignPackagesCommandHandler creates the bulk assignment handler.
func NewAssignPackagesCommandHandler(
	store AssignmentStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignPackagesCommandHandler {
	return AssignPackagesCommandHandler{
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "assign_packages_handler"),
	}
}

// Handle processes the bulk assignment.
// Returns ObjectNotFoundError for the whole call only when the target load is
// missing; every per-package failure is captured in the result instead.
func (h AssignPackagesCommandHandler) Handle(
	ctx context.Context,
	cmd AssignPackagesCommand,
) (BulkResult, error) {
	result := newBulkResult()

	if err := cmd.Validate(); err != nil {
		return result, err
	}

	// The target load is shared by every unit of work; a missing target fails
	// the call, not each id.
	if _, err := h.store.GetLoad(ctx, cmd.LoadID()); err != nil {
		return result, err
	}

	for _, rawID := range cmd.PackageIDs() {
		packageID, err := kernel.UUIDFromString(rawID)
		if err != nil {
			result.Failed[rawID] = errs.NewObjectNotFoundErrorWithCause("package", rawID, err)
			continue
		}

		if err = h.assignOne(ctx, packageID, cmd.LoadID(), cmd.OnlyIfUnassigned()); err != nil {
			result.Failed[rawID] = err
			continue
		}

		result.Succeeded = append(result.Succeeded, packageID)
		h.notifier.PackageAssigned(ctx, packageID, cmd.LoadID())
	}

	return result, nil
}

// assignOne performs one unit of work. The package write is the commit point;
// everything after it is post-commit cleanup that reconciliation can finish.
func (h AssignPackagesCommandHandler) assignOne(
	ctx context.Context,
	packageID kernel.UUID,
	loadID kernel.UUID,
	onlyIfUnassigned bool,
) error {
	pkg, err := h.store.GetPackage(ctx, packageID)
	if err != nil {
		return err
	}

	priorLoadID := pkg.LoadID()
	if priorLoadID != nil && priorLoadID.IsEqual(loadID) {
		// Already on the target load; re-appending below keeps membership
		// correct even if a prior call lost it.
		priorLoadID = nil
	} else if priorLoadID != nil && onlyIfUnassigned {
		return errs.NewAlreadyAssignedError(packageID.String(), priorLoadID.String())
	}

	// Read-modify-write on the target membership, read taken just before the
	// write. Appending before the package commit means a crash here leaves
	// only a scrubbable phantom member.
	targetLoad, err := h.store.GetLoad(ctx, loadID)
	if err != nil {
		return err
	}
	if err = targetLoad.AddMember(packageID); err != nil {
		return err
	}
	if err = h.store.PutLoad(ctx, targetLoad); err != nil {
		return err
	}

	if err = pkg.AssignToLoad(loadID); err != nil {
		return err
	}

	// Commit point.
	if err = h.store.PutPackage(ctx, pkg); err != nil {
		return err
	}

	// Post-commit: detach from the prior load and refresh totals. Failures
	// here leave repairable drift, not a wrong assignment.
	if priorLoadID != nil {
		h.detachFromPriorLoad(ctx, packageID, *priorLoadID)
	}
	if err = refreshLoadTotals(ctx, h.store, loadID); err != nil {
		h.logger.WarnContext(ctx, "Target load totals not refreshed",
			"load_id", loadID.String(), "error", err)
	}

	return nil
}

// detachFromPriorLoad removes the package from the load it is leaving and
// refreshes that load's totals. Errors are logged and swallowed: the package
// record already points at the new load, so a leftover membership entry is a
// phantom the scrub pass removes.
func (h AssignPackagesCommandHandler) detachFromPriorLoad(
	ctx context.Context,
	packageID kernel.UUID,
	priorLoadID kernel.UUID,
) {
	priorLoad, err := h.store.GetLoad(ctx, priorLoadID)
	if err != nil {
		h.logger.WarnContext(ctx, "Prior load not detached",
			"package_id", packageID.String(), "load_id", priorLoadID.String(), "error", err)
		return
	}

	priorLoad.RemoveMember(packageID)
	if err = h.store.PutLoad(ctx, priorLoad); err != nil {
		h.logger.WarnContext(ctx, "Prior load not detached",
			"package_id", packageID.String(), "load_id", priorLoadID.String(), "error", err)
		return
	}

	if err = refreshLoadTotals(ctx, h.store, priorLoadID); err != nil {
		h.logger.WarnContext(ctx, "Prior load totals not refreshed",
			"load_id", priorLoadID.String(), "error", err)
	}
}
