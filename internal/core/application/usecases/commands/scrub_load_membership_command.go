package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrScrubLoadMembershipCommandIsNotConstructed = errors.New(
	"ScrubLoadMembershipCommand must be created via NewScrubLoadMembershipCommand constructor",
)

// ScrubLoadMembershipCommand represents a request to repair one load's
// membership list and derived totals.
type ScrubLoadMembershipCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScrubLoadMembershipCommand creates a membership scrub command.
func NewScrubLoadMembershipCommand(loadID kernel.UUID) (ScrubLoadMembershipCommand, error) {
	if err := loadID.Validate(); err != nil {
		return ScrubLoadMembershipCommand{}, err
	}

	return ScrubLoadMembershipCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScrubLoadMembershipCommand) Validate() error {
	return c.guard.Validate(ErrScrubLoadMembershipCommandIsNotConstructed)
}

// LoadID returns the identifier of the load to scrub.
func (c ScrubLoadMembershipCommand) LoadID() kernel.UUID {
	return c.loadID
}
