package commands

import (
	"context"

	"freightdesk/internal/core/domain/services"
	"freightdesk/internal/core/ports"
)

// ConsolidateCommandHandler bundles a child package under a parent.
// Both sides of the relationship are always written together: the parent's
// child list and the child's parent reference.
//
// Commit point: the child write setting parentId. The parent's child list is
// written first, so a crash between the writes leaves a parent listing a child
// that doesn't point back: a dangling reference the consolidation scrub
// removes, never a child with a bogus parent.
type ConsolidateCommandHandler struct {
	store  ports.PackageStore
	policy services.ConsolidationPolicy
}

// NewConsolidateCommandHandler creates the consolidation handler.
func NewConsolidateCommandHandler(store ports.PackageStore) ConsolidateCommandHandler {
	return ConsolidateCommandHandler{
		store:  store,
		policy: services.NewConsolidationPolicy(),
	}
}

// Handle processes the consolidation.
//
// Returns ObjectNotFoundError if either package is missing and
// InvalidConsolidationError if a precondition fails; no write happens on
// error. Repeating an already-established pair is a no-op success, so the
// operation is idempotent.
func (h ConsolidateCommandHandler) Handle(ctx context.Context, cmd ConsolidateCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	child, err := h.store.GetPackage(ctx, cmd.ChildID())
	if err != nil {
		return err
	}
	parent, err := h.store.GetPackage(ctx, cmd.ParentID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateConsolidation(child, parent); err != nil {
		return err
	}

	if existing := child.ParentID(); existing != nil && parent.HasChild(child.ID()) {
		// Pair already established; nothing to write.
		return nil
	}

	if err = parent.AddChild(child.ID()); err != nil {
		return err
	}
	if err = h.store.PutPackage(ctx, parent); err != nil {
		return err
	}

	if err = child.SetParent(parent.ID()); err != nil {
		return err
	}

	// Commit point.
	return h.store.PutPackage(ctx, child)
}
