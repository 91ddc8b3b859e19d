package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand represents a request to remove a load, releasing every
// package currently assigned to it.
type DeleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLoadCommand creates a command to delete a load.
func NewDeleteLoadCommand(loadID kernel.UUID) (DeleteLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return DeleteLoadCommand{}, err
	}

	return DeleteLoadCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the load to delete.
func (c DeleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
