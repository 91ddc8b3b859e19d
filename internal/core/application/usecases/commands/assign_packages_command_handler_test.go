package commands_test

import (
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/core/application/usecases/commands"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignPackagesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)
	ld := seedLoad(t, store)

	notifier := new(MockNotifier)
	notifier.On("PackageAssigned", mock.Anything, pkg.ID(), ld.ID()).Once()

	h := commands.NewAssignPackagesCommandHandler(store, notifier, testLogger())

	cmd, err := commands.NewAssignPackagesCommand([]string{pkg.ID().String()}, ld.ID(), false)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SucceededCount())
	assert.Equal(t, 0, result.FailedCount())

	storedPkg, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	require.NotNil(t, storedPkg.LoadID())
	assert.True(t, storedPkg.LoadID().IsEqual(ld.ID()))

	storedLoad, err := store.GetLoad(ctx, ld.ID())
	require.NoError(t, err)
	assert.True(t, storedLoad.HasMember(pkg.ID()))
	assert.Equal(t, 1, storedLoad.TotalPackages())
	assert.True(t, storedLoad.TotalWeight().Equal(pkg.Weight()))

	notifier.AssertExpectations(t)
}

func TestAssignPackagesCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)
	ld := seedLoad(t, store)
	missingID := kernel.NewUUID()

	h := commands.NewAssignPackagesCommandHandler(store, relaxedNotifier(), testLogger())

	cmd, err := commands.NewAssignPackagesCommand(
		[]string{pkg.ID().String(), missingID.String(), "not-a-uuid"}, ld.ID(), false,
	)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SucceededCount())
	assert.Equal(t, 2, result.FailedCount())
	assert.ErrorIs(t, result.Failed[missingID.String()], errs.ErrObjectNotFound)
	assert.ErrorIs(t, result.Failed["not-a-uuid"], errs.ErrObjectNotFound)

	storedPkg, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	require.NotNil(t, storedPkg.LoadID())
}

func TestAssignPackagesCommandHandler_Handle_Reassignment(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)
	first := seedLoad(t, store)
	second := seedLoad(t, store)
	assignSeeded(t, store, pkg, first)

	h := commands.NewAssignPackagesCommandHandler(store, relaxedNotifier(), testLogger())

	cmd, err := commands.NewAssignPackagesCommand([]string{pkg.ID().String()}, second.ID(), false)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SucceededCount())

	storedPkg, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	require.NotNil(t, storedPkg.LoadID())
	assert.True(t, storedPkg.LoadID().IsEqual(second.ID()))

	prior, err := store.GetLoad(ctx, first.ID())
	require.NoError(t, err)
	assert.False(t, prior.HasMember(pkg.ID()))
	assert.Equal(t, 0, prior.TotalPackages())
	assert.True(t, prior.TotalWeight().IsZero())

	target, err := store.GetLoad(ctx, second.ID())
	require.NoError(t, err)
	assert.True(t, target.HasMember(pkg.ID()))
	assert.Equal(t, 1, target.TotalPackages())
}

func TestAssignPackagesCommandHandler_Handle_OnlyIfUnassigned(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)
	first := seedLoad(t, store)
	second := seedLoad(t, store)
	assignSeeded(t, store, pkg, first)

	h := commands.NewAssignPackagesCommandHandler(store, relaxedNotifier(), testLogger())

	cmd, err := commands.NewAssignPackagesCommand([]string{pkg.ID().String()}, second.ID(), true)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SucceededCount())
	assert.ErrorIs(t, result.Failed[pkg.ID().String()], errs.ErrAlreadyAssigned)

	storedPkg, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	require.NotNil(t, storedPkg.LoadID())
	assert.True(t, storedPkg.LoadID().IsEqual(first.ID()))
}

func TestAssignPackagesCommandHandler_Handle_SameLoadIsIdempotent(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)
	ld := seedLoad(t, store)
	assignSeeded(t, store, pkg, ld)

	h := commands.NewAssignPackagesCommandHandler(store, relaxedNotifier(), testLogger())

	// Assigning to the current load succeeds even with the unassigned-only
	// guard set.
	cmd, err := commands.NewAssignPackagesCommand([]string{pkg.ID().String()}, ld.ID(), true)
	require.NoError(t, err)

	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SucceededCount())

	storedLoad, err := store.GetLoad(ctx, ld.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, storedLoad.TotalPackages())
}

func TestAssignPackagesCommandHandler_Handle_MissingLoadFailsCall(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)

	h := commands.NewAssignPackagesCommandHandler(store, relaxedNotifier(), testLogger())

	cmd, err := commands.NewAssignPackagesCommand([]string{pkg.ID().String()}, kernel.NewUUID(), false)
	require.NoError(t, err)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	storedPkg, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Nil(t, storedPkg.LoadID())
}

func TestAssignPackagesCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewAssignPackagesCommandHandler(
		memory.NewStore(), relaxedNotifier(), testLogger(),
	)

	_, err := h.Handle(t.Context(), commands.AssignPackagesCommand{})
	require.Error(t, err)
}
