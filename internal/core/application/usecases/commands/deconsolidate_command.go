package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrDeconsolidateCommandIsNotConstructed = errors.New(
	"DeconsolidateCommand must be created via NewDeconsolidateCommand constructor",
)

// DeconsolidateCommand represents a request to detach a child package from its
// consolidating parent.
type DeconsolidateCommand struct { //nolint:recvcheck //using for validation
	childID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeconsolidateCommand creates a deconsolidation command.
func NewDeconsolidateCommand(childID kernel.UUID) (DeconsolidateCommand, error) {
	if err := childID.Validate(); err != nil {
		return DeconsolidateCommand{}, err
	}

	return DeconsolidateCommand{
		childID: childID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeconsolidateCommand) Validate() error {
	return c.guard.Validate(ErrDeconsolidateCommandIsNotConstructed)
}

// ChildID returns the package to detach from its parent.
func (c DeconsolidateCommand) ChildID() kernel.UUID {
	return c.childID
}
