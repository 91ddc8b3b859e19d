package commands_test

import (
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceLoadStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	ld := seedLoad(t, store)

	h := commands.NewAdvanceLoadStatusCommandHandler(store)

	cmd, err := commands.NewAdvanceLoadStatusCommand(ld.ID(), load.StatusInTransit)
	require.NoError(t, err)

	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, load.StatusInTransit, updated.Status())

	stored, err := store.GetLoad(ctx, ld.ID())
	require.NoError(t, err)
	assert.Equal(t, load.StatusInTransit, stored.Status())
}

func TestAdvanceLoadStatusCommandHandler_Handle_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	ld := seedLoad(t, store)

	h := commands.NewAdvanceLoadStatusCommandHandler(store)

	cmd, err := commands.NewAdvanceLoadStatusCommand(ld.ID(), load.StatusPlanned)
	require.NoError(t, err)

	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, load.StatusPlanned, updated.Status())
}

func TestAdvanceLoadStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	ld := seedLoad(t, store)

	h := commands.NewAdvanceLoadStatusCommandHandler(store)

	// Planned cannot jump straight to complete.
	cmd, err := commands.NewAdvanceLoadStatusCommand(ld.ID(), load.StatusComplete)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	stored, err := store.GetLoad(ctx, ld.ID())
	require.NoError(t, err)
	assert.Equal(t, load.StatusPlanned, stored.Status())
}

func TestAdvanceLoadStatusCommandHandler_Handle_LoadNotFound(t *testing.T) {
	h := commands.NewAdvanceLoadStatusCommandHandler(memory.NewStore())

	cmd, err := commands.NewAdvanceLoadStatusCommand(kernel.NewUUID(), load.StatusInTransit)
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceLoadStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAdvanceLoadStatusCommandHandler(memory.NewStore())

	_, err := h.Handle(t.Context(), commands.AdvanceLoadStatusCommand{})
	require.Error(t, err)
}
