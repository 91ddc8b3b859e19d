package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrConsolidateCommandIsNotConstructed = errors.New(
	"ConsolidateCommand must be created via NewConsolidateCommand constructor",
)

// ConsolidateCommand represents a request to bundle one package (the child)
// under another (the parent) for combined handling.
type ConsolidateCommand struct { //nolint:recvcheck //using for validation
	childID  kernel.UUID
	parentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsolidateCommand creates a consolidation command.
// Both ids must be valid UUIDs; the business preconditions (self-reference,
// depth, existing relationships) are checked by the handler against current
// store state.
func NewConsolidateCommand(childID, parentID kernel.UUID) (ConsolidateCommand, error) {
	if err := errors.Join(childID.Validate(), parentID.Validate()); err != nil {
		return ConsolidateCommand{}, err
	}

	return ConsolidateCommand{
		childID:  childID,
		parentID: parentID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsolidateCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateCommandIsNotConstructed)
}

// ChildID returns the package to consolidate.
func (c ConsolidateCommand) ChildID() kernel.UUID {
	return c.childID
}

// ParentID returns the consolidating parent package.
func (c ConsolidateCommand) ParentID() kernel.UUID {
	return c.parentID
}
