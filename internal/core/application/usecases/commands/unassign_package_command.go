package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrUnassignPackageCommandIsNotConstructed = errors.New(
	"UnassignPackageCommand must be created via NewUnassignPackageCommand constructor",
)

// UnassignPackageCommand represents a request to take a package off its
// current load.
type UnassignPackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignPackageCommand creates a command to unassign a package.
func NewUnassignPackageCommand(packageID kernel.UUID) (UnassignPackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return UnassignPackageCommand{}, err
	}

	return UnassignPackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignPackageCommand) Validate() error {
	return c.guard.Validate(ErrUnassignPackageCommandIsNotConstructed)
}

// PackageID returns the package to unassign.
func (c UnassignPackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
