package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrScrubConsolidationCommandIsNotConstructed = errors.New(
	"ScrubConsolidationCommand must be created via NewScrubConsolidationCommand constructor",
)

// ScrubConsolidationCommand represents a request to repair one package's
// consolidation links against its counterparts.
type ScrubConsolidationCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewScrubConsolidationCommand creates a consolidation scrub command.
func NewScrubConsolidationCommand(packageID kernel.UUID) (ScrubConsolidationCommand, error) {
	if err := packageID.Validate(); err != nil {
		return ScrubConsolidationCommand{}, err
	}

	return ScrubConsolidationCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ScrubConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrScrubConsolidationCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to scrub.
func (c ScrubConsolidationCommand) PackageID() kernel.UUID {
	return c.packageID
}
