package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/pkg/guard"
)

var ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
	"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
)

// UpdateShipmentStatusCommand represents a request to move a package to a new
// shipment status.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	packageID kernel.UUID
	status    packages.ShipmentStatus

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to change a package's
// shipment status.
func NewUpdateShipmentStatusCommand(
	packageID kernel.UUID,
	status packages.ShipmentStatus,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// PackageID returns the identifier of the package to update.
func (c UpdateShipmentStatusCommand) PackageID() kernel.UUID {
	return c.packageID
}

// Status returns the requested target status.
func (c UpdateShipmentStatusCommand) Status() packages.ShipmentStatus {
	return c.status
}

func (c *UpdateShipmentStatusCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status packages.ShipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
