package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrReconcilePackageIndexesCommandIsNotConstructed = errors.New(
	"ReconcilePackageIndexesCommand must be created via NewReconcilePackageIndexesCommand constructor",
)

// ReconcilePackageIndexesCommand represents a request to repair the index
// entries of one package against its current record.
type ReconcilePackageIndexesCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReconcilePackageIndexesCommand creates a reconciliation command.
func NewReconcilePackageIndexesCommand(packageID kernel.UUID) (ReconcilePackageIndexesCommand, error) {
	if err := packageID.Validate(); err != nil {
		return ReconcilePackageIndexesCommand{}, err
	}

	return ReconcilePackageIndexesCommand{
		packageID: packageID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePackageIndexesCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePackageIndexesCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to reconcile.
func (c ReconcilePackageIndexesCommand) PackageID() kernel.UUID {
	return c.packageID
}
