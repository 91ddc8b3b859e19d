package services

import (
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/pkg/errs"
)

// ConsolidationPolicy validates the cross-aggregate preconditions for bundling
// one package under another. Single-aggregate rules (self-reference, a child
// gaining children) are enforced by the Package methods themselves; this
// policy checks the rules that need both packages in hand.
//
// Consolidation is exactly one level deep, so the general no-cycle rule
// reduces to two local checks: the parent must not itself be a child, and the
// child must not itself be a parent. Together with the self-reference check
// this makes consolidate(a,b) followed by consolidate(b,a) fail on the second
// call.
//
// Violations return InvalidConsolidationError; the caller performs no writes
// on error.
type ConsolidationPolicy struct{}

// NewConsolidationPolicy creates a new ConsolidationPolicy instance.
func NewConsolidationPolicy() ConsolidationPolicy {
	return ConsolidationPolicy{}
}

// ValidateConsolidation checks whether child may be consolidated under parent.
//
// Preconditions:
//   - child and parent are distinct packages
//   - parent is not itself consolidated under another package (depth cap)
//   - child has no children of its own (depth cap)
//   - child is not already consolidated under a different parent; repeating
//     an existing child-parent pair is allowed so the operation stays idempotent
//
// Returns nil when consolidation is allowed, or an InvalidConsolidationError
// naming the violated rule.
func (ConsolidationPolicy) ValidateConsolidation(child, parent *packages.Package) error {
	if err := child.Validate(); err != nil {
		return err
	}
	if err := parent.Validate(); err != nil {
		return err
	}

	childID := child.ID().String()
	parentID := parent.ID().String()

	if child.IsEqual(parent) {
		return errs.NewInvalidConsolidationError(childID, parentID,
			"package cannot be consolidated under itself")
	}

	if parent.IsConsolidated() {
		return errs.NewInvalidConsolidationError(childID, parentID,
			"parent is itself consolidated under another package")
	}

	if child.HasChildren() {
		return errs.NewInvalidConsolidationError(childID, parentID,
			"child has consolidated children of its own")
	}

	if existing := child.ParentID(); existing != nil && !existing.IsEqual(parent.ID()) {
		return errs.NewInvalidConsolidationError(childID, parentID,
			"child is already consolidated under a different parent")
	}

	return nil
}
