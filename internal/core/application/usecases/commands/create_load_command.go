package commands

import (
	"errors"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a request to create a new load run.
// The load starts planned with an empty membership list; the delivery schedule
// and default delivery date are optional.
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID              kernel.UUID
	deliverySchedule    map[string]kernel.Date
	defaultDeliveryDate kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand creates a command to register a new load.
// deliverySchedule may be nil; defaultDeliveryDate may be zero when the load
// carries no fallback date.
func NewCreateLoadCommand(
	loadID kernel.UUID,
	deliverySchedule map[string]kernel.Date,
	defaultDeliveryDate kernel.Date,
) (CreateLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return CreateLoadCommand{}, err
	}

	schedule := make(map[string]kernel.Date, len(deliverySchedule))
	for city, date := range deliverySchedule {
		if city == "" {
			return CreateLoadCommand{}, errors.New("delivery schedule city is required")
		}
		if err := date.Validate(); err != nil {
			return CreateLoadCommand{}, err
		}
		schedule[city] = date
	}

	return CreateLoadCommand{
		loadID:              loadID,
		deliverySchedule:    schedule,
		defaultDeliveryDate: defaultDeliveryDate,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

// LoadID returns the identifier for the new load.
func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DeliverySchedule returns the city-to-date schedule (possibly empty).
func (c CreateLoadCommand) DeliverySchedule() map[string]kernel.Date {
	return c.deliverySchedule
}

// DefaultDeliveryDate returns the fallback delivery date (zero when unset).
func (c CreateLoadCommand) DefaultDeliveryDate() kernel.Date {
	return c.defaultDeliveryDate
}
