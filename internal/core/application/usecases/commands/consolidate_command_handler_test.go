package commands_test

import (
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolidateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	parent := seedPackage(t, store)

	h := commands.NewConsolidateCommandHandler(store)

	cmd, err := commands.NewConsolidateCommand(child.ID(), parent.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	storedChild, err := store.GetPackage(ctx, child.ID())
	require.NoError(t, err)
	require.NotNil(t, storedChild.ParentID())
	assert.True(t, storedChild.ParentID().IsEqual(parent.ID()))

	storedParent, err := store.GetPackage(ctx, parent.ID())
	require.NoError(t, err)
	assert.True(t, storedParent.HasChild(child.ID()))
}

func TestConsolidateCommandHandler_Handle_RepeatedPairIsNoOp(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, child, parent)

	h := commands.NewConsolidateCommandHandler(store)

	cmd, err := commands.NewConsolidateCommand(child.ID(), parent.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	storedParent, err := store.GetPackage(ctx, parent.ID())
	require.NoError(t, err)
	assert.Len(t, storedParent.ChildIDs(), 1)
}

func TestConsolidateCommandHandler_Handle_RejectsCycle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	a := seedPackage(t, store)
	b := seedPackage(t, store)
	consolidateSeeded(t, store, a, b)

	h := commands.NewConsolidateCommandHandler(store)

	// b is already a's parent; consolidating b under a would form a cycle.
	cmd, err := commands.NewConsolidateCommand(b.ID(), a.ID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidConsolidation)
}

func TestConsolidateCommandHandler_Handle_RejectsSelf(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)

	h := commands.NewConsolidateCommandHandler(store)

	cmd, err := commands.NewConsolidateCommand(pkg.ID(), pkg.ID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidConsolidation)
}

func TestConsolidateCommandHandler_Handle_RejectsSecondParent(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	first := seedPackage(t, store)
	second := seedPackage(t, store)
	consolidateSeeded(t, store, child, first)

	h := commands.NewConsolidateCommandHandler(store)

	cmd, err := commands.NewConsolidateCommand(child.ID(), second.ID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidConsolidation)

	storedChild, err := store.GetPackage(ctx, child.ID())
	require.NoError(t, err)
	require.NotNil(t, storedChild.ParentID())
	assert.True(t, storedChild.ParentID().IsEqual(first.ID()))
}

func TestConsolidateCommandHandler_Handle_MissingParent(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)

	h := commands.NewConsolidateCommandHandler(store)

	cmd, err := commands.NewConsolidateCommand(child.ID(), kernel.NewUUID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestConsolidateCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewConsolidateCommandHandler(memory.NewStore())

	err := h.Handle(t.Context(), commands.ConsolidateCommand{})
	require.Error(t, err)
}

func TestDeconsolidateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, child, parent)

	h := commands.NewDeconsolidateCommandHandler(store, testLogger())

	cmd, err := commands.NewDeconsolidateCommand(child.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	storedChild, err := store.GetPackage(ctx, child.ID())
	require.NoError(t, err)
	assert.Nil(t, storedChild.ParentID())

	storedParent, err := store.GetPackage(ctx, parent.ID())
	require.NoError(t, err)
	assert.False(t, storedParent.HasChild(child.ID()))
}

func TestDeconsolidateCommandHandler_Handle_NotConsolidated(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)

	h := commands.NewDeconsolidateCommandHandler(store, testLogger())

	cmd, err := commands.NewDeconsolidateCommand(pkg.ID())
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotConsolidated)
}

func TestDeconsolidateCommandHandler_Handle_MissingParentStillClearsChild(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, child, parent)
	require.NoError(t, store.DeletePackage(ctx, parent.ID()))

	h := commands.NewDeconsolidateCommandHandler(store, testLogger())

	cmd, err := commands.NewDeconsolidateCommand(child.ID())
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	storedChild, err := store.GetPackage(ctx, child.ID())
	require.NoError(t, err)
	assert.Nil(t, storedChild.ParentID())
}
