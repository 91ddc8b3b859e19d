package commands

import (
	"context"
	"errors"
	"log/slog"

	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// ScrubConsolidationCommandHandler repairs one package's consolidation links.
// The child's parent pointer is the authoritative side of the relationship:
// a child reference whose package does not point back is dropped, a parent
// that forgot a child pointing at it gets the child re-added, and a child
// whose parent record is gone is released.
type ScrubConsolidationCommandHandler struct {
	store  ports.PackageStore
	logger *slog.Logger
}

// NewScrubConsolidationCommandHandler creates a consolidation scrub handler.
func NewScrubConsolidationCommandHandler(
	store ports.PackageStore,
	logger *slog.Logger,
) ScrubConsolidationCommandHandler {
	return ScrubConsolidationCommandHandler{
		store:  store,
		logger: logger.With("component", "scrub_consolidation_handler"),
	}
}

// Handle scrubs the package's parent and child links.
func (h ScrubConsolidationCommandHandler) Handle(
	ctx context.Context,
	cmd ScrubConsolidationCommand,
) (ScrubResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScrubResult{}, err
	}

	pkg, err := h.store.GetPackage(ctx, cmd.PackageID())
	if err != nil {
		return ScrubResult{}, err
	}

	result := ScrubResult{}
	changed := false

	for _, childID := range pkg.ChildIDs() {
		child, childErr := h.store.GetPackage(ctx, childID)
		if childErr != nil && !errors.Is(childErr, errs.ErrObjectNotFound) {
			return result, childErr
		}

		pointsBack := childErr == nil &&
			child.ParentID() != nil && child.ParentID().IsEqual(pkg.ID())
		if pointsBack {
			continue
		}

		h.logger.InfoContext(ctx, "Dropping dangling child reference",
			"package_id", pkg.ID().String(), "child_id", childID.String())
		pkg.RemoveChild(childID)
		result.Removed++
		changed = true
	}

	if parentID := pkg.ParentID(); parentID != nil {
		parent, parentErr := h.store.GetPackage(ctx, *parentID)
		switch {
		case errors.Is(parentErr, errs.ErrObjectNotFound):
			h.logger.InfoContext(ctx, "Releasing child of missing parent",
				"package_id", pkg.ID().String(), "parent_id", parentID.String())
			pkg.ClearParent()
			result.Removed++
			changed = true
		case parentErr != nil:
			return result, parentErr
		case !parent.HasChild(pkg.ID()):
			// Crash window between the parent write and the child write:
			// restore the parent's side from the authoritative child pointer.
			if addErr := parent.AddChild(pkg.ID()); addErr == nil {
				if putErr := h.store.PutPackage(ctx, parent); putErr != nil {
					return result, putErr
				}
			} else {
				h.logger.WarnContext(ctx, "Parent cannot take child back, releasing child",
					"package_id", pkg.ID().String(), "parent_id", parentID.String(), "error", addErr)
				pkg.ClearParent()
				result.Removed++
				changed = true
			}
		}
	}

	if !changed {
		return result, nil
	}

	return result, h.store.PutPackage(ctx, pkg)
}
