package commands

import (
	"context"
	"log/slog"

	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// DeconsolidateCommandHandler detaches a child package from its parent,
// updating both sides of the relationship.
//
// Commit point: the child write clearing parentId. The parent's child list is
// cleaned up after it; a crash in between leaves a dangling child reference on
// the parent, which the consolidation scrub removes because the child no
// longer points back.
type DeconsolidateCommandHandler struct {
	store  ports.PackageStore
	logger *slog.Logger
}

// NewDeconsolidateCommandHandler creates the deconsolidation handler.
func NewDeconsolidateCommandHandler(store ports.PackageStore, logger *slog.Logger) DeconsolidateCommandHandler {
	return DeconsolidateCommandHandler{
		store:  store,
		logger: logger.With("component", "deconsolidate_handler"),
	}
}

// Handle processes the deconsolidation.
// Returns NotConsolidatedError if the package has no parent.
func (h DeconsolidateCommandHandler) Handle(ctx context.Context, cmd DeconsolidateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	child, err := h.store.GetPackage(ctx, cmd.ChildID())
	if err != nil {
		return err
	}

	parentID := child.ParentID()
	if parentID == nil {
		return errs.NewNotConsolidatedError(cmd.ChildID().String())
	}

	child.ClearParent()

	// Commit point.
	if err = h.store.PutPackage(ctx, child); err != nil {
		return err
	}

	// Post-commit: remove the child from the parent's list. A missing parent
	// means the relationship was already half-gone; clearing the child healed it.
	parent, err := h.store.GetPackage(ctx, *parentID)
	if err != nil {
		h.logger.WarnContext(ctx, "Parent not updated during deconsolidation",
			"child_id", cmd.ChildID().String(), "parent_id", parentID.String(), "error", err)
		return nil
	}

	parent.RemoveChild(cmd.ChildID())
	if err = h.store.PutPackage(ctx, parent); err != nil {
		h.logger.WarnContext(ctx, "Parent not updated during deconsolidation",
			"child_id", cmd.ChildID().String(), "parent_id", parentID.String(), "error", err)
	}

	return nil
}
