package commands

import (
	"context"

	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/ports"
)

// AdvanceLoadStatusCommandHandler handles load lifecycle transitions. Loads
// carry no secondary indexes, so this is a plain single-record update.
type AdvanceLoadStatusCommandHandler struct {
	store ports.LoadStore
}

// NewAdvanceLoadStatusCommandHandler creates a handler for load status updates.
func NewAdvanceLoadStatusCommandHandler(store ports.LoadStore) AdvanceLoadStatusCommandHandler {
	return AdvanceLoadStatusCommandHandler{store: store}
}

// Handle processes the load status change.
// Returns the updated load, or ValueIsInvalidError when the transition is not
// allowed from the load's current status.
func (h AdvanceLoadStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceLoadStatusCommand,
) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := h.store.GetLoad(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if l.Status() == cmd.Status() {
		return l, nil
	}

	if err = l.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = h.store.PutLoad(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}
