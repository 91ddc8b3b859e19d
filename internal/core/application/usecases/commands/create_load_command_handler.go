package commands

import (
	"context"
	"errors"
	"fmt"

	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"
)

// CreateLoadCommandHandler handles load registration.
// Commit point: the load record write (the only write this operation makes).
type CreateLoadCommandHandler struct {
	store ports.LoadStore
}

// NewCreateLoadCommandHandler creates a handler for load registration.
func NewCreateLoadCommandHandler(store ports.LoadStore) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{store: store}
}

// Handle processes the load registration command.
// Returns the created load, or ValueIsInvalidError if the id is already taken.
func (h CreateLoadCommandHandler) Handle(
	ctx context.Context,
	cmd CreateLoadCommand,
) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.store.GetLoad(ctx, cmd.LoadID()); err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("loadId",
			fmt.Errorf("load %s already exists", cmd.LoadID().String()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	ld, err := load.NewLoad(cmd.LoadID())
	if err != nil {
		return nil, err
	}

	for city, date := range cmd.DeliverySchedule() {
		if err = ld.SetDeliveryDate(city, date); err != nil {
			return nil, err
		}
	}
	if !cmd.DefaultDeliveryDate().IsZero() {
		if err = ld.SetDefaultDeliveryDate(cmd.DefaultDeliveryDate()); err != nil {
			return nil, err
		}
	}

	if err = h.store.PutLoad(ctx, ld); err != nil {
		return nil, err
	}

	return ld, nil
}
