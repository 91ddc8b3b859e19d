package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// DeleteLoadCommandHandler handles load removal. Every member package is
// unassigned before the load record is deleted, so a crash mid-way leaves the
// load with fewer members, never a package pointing at a missing load.
//
// Commit point: the load record delete.
type DeleteLoadCommandHandler struct {
	store    AssignmentStore
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewDeleteLoadCommandHandler creates a handler for load deletion.
func NewDeleteLoadCommandHandler(
	store AssignmentStore,
	notifier ports.Notifier,
	logger *slog.Logger,
) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "delete_load_handler"),
	}
}

// Handle processes the load deletion.
// Returns ObjectNotFoundError if the load does not exist. A member that fails
// to release aborts the delete; already-released members stay released.
func (h DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	l, err := h.store.GetLoad(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	for _, packageID := range l.Membership() {
		pkg, memberErr := h.store.GetPackage(ctx, packageID)
		if memberErr != nil {
			if errors.Is(memberErr, errs.ErrObjectNotFound) {
				continue
			}
			return memberErr
		}

		// Stale membership entry: the package belongs elsewhere, leave it.
		memberLoadID := pkg.LoadID()
		if memberLoadID == nil || !memberLoadID.IsEqual(cmd.LoadID()) {
			continue
		}

		pkg.Unassign()
		if memberErr = h.store.PutPackage(ctx, pkg); memberErr != nil {
			return memberErr
		}

		h.notifier.PackageUnassigned(ctx, packageID, cmd.LoadID())
	}

	// Commit point.
	return h.store.DeleteLoad(ctx, cmd.LoadID())
}
