package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/pkg/guard"
)

var ErrAdvanceLoadStatusCommandIsNotConstructed = errors.New(
	"AdvanceLoadStatusCommand must be created via NewAdvanceLoadStatusCommand constructor",
)

// AdvanceLoadStatusCommand represents a request to move a load along its
// lifecycle (planned, in transit, delivered, complete).
type AdvanceLoadStatusCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	status load.Status

	guard guard.ConstructorGuard
}

// NewAdvanceLoadStatusCommand creates a command to change a load's status.
func NewAdvanceLoadStatusCommand(
	loadID kernel.UUID,
	status load.Status,
) (AdvanceLoadStatusCommand, error) {
	cmd := AdvanceLoadStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceLoadStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLoadStatusCommandIsNotConstructed)
}

// LoadID returns the identifier of the load to update.
func (c AdvanceLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Status returns the requested target status.
func (c AdvanceLoadStatusCommand) Status() load.Status {
	return c.status
}

func (c *AdvanceLoadStatusCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *AdvanceLoadStatusCommand) setStatus(status load.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
