package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrDeletePackageCommandIsNotConstructed = errors.New(
	"DeletePackageCommand must be created via NewDeletePackageCommand constructor",
)

// DeletePackageCommand represents a request to remove a package record along
// with its load membership, consolidation links, and index entries.
type DeletePackageCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePackageCommand creates a command to delete a package.
func NewDeletePackageCommand(packageID kernel.UUID) (DeletePackageCommand, error) {
	if err := packageID.Validate(); err != nil {
		return DeletePackageCommand{}, err
	}

	return DeletePackageCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePackageCommand) Validate() error {
	return c.guard.Validate(ErrDeletePackageCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to delete.
func (c DeletePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}
