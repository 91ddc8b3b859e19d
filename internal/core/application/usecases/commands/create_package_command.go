package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand represents a request to register a new package for a
// customer. The package is created in "ready" status with no load assignment
// and no consolidation links.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(
//	    kernel.NewUUID(), customerID, kernel.Today(),
//	    decimal.NewFromFloat(2.5), "Rotterdam",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid package data: %w", err)
//	}
//	pkg, err := handler.Handle(ctx, cmd)
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID       kernel.UUID
	customerID      kernel.UUID
	receivedDate    kernel.Date
	weight          decimal.Decimal
	destinationCity string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand creates a command to register a new package.
// A zero receivedDate defaults to today; weight must not be negative.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	customerID kernel.UUID,
	receivedDate kernel.Date,
	weight decimal.Decimal,
	destinationCity string,
) (CreatePackageCommand, error) {
	if receivedDate.IsZero() {
		receivedDate = kernel.Today()
	}

	cmd := CreatePackageCommand{
		receivedDate:    receivedDate,
		destinationCity: destinationCity,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setCustomerID(customerID),
		cmd.setWeight(weight),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

// PackageID returns the identifier for the new package.
func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

// CustomerID returns the owning customer's identifier.
func (c CreatePackageCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ReceivedDate returns the date the item entered the system.
func (c CreatePackageCommand) ReceivedDate() kernel.Date {
	return c.receivedDate
}

// Weight returns the package weight.
func (c CreatePackageCommand) Weight() decimal.Decimal {
	return c.weight
}

// DestinationCity returns the destination city, or "" if not provided.
func (c CreatePackageCommand) DestinationCity() string {
	return c.destinationCity
}

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *CreatePackageCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreatePackageCommand) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errors.New("weight must not be negative")
	}
	c.weight = weight
	return nil
}
