package queries_test

import (
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/core/application/usecases/queries"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPackageQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	pkg := seedPackage(t, store)
	ld := seedLoad(t, store)
	assignSeeded(t, store, pkg, ld)

	h := queries.NewGetPackageQueryHandler(store, testLogger())

	query, err := queries.NewGetPackageQuery(pkg.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.True(t, response.ID.IsEqual(pkg.ID()))
	assert.True(t, response.CustomerID.IsEqual(pkg.CustomerID()))
	assert.True(t, response.ReceivedDate.IsEqual(pkg.ReceivedDate()))
	assert.Equal(t, pkg.Status(), response.Status)
	assert.Equal(t, pkg.DestinationCity(), response.DestinationCity)
	require.NotNil(t, response.LoadID)
	assert.True(t, response.LoadID.IsEqual(ld.ID()))
	assert.Nil(t, response.ParentID)
	assert.Empty(t, response.Children)
}

func TestGetPackageQueryHandler_Handle_ResolvesChildren(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	first := seedPackage(t, store)
	second := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, first, parent)
	consolidateSeeded(t, store, second, parent)

	h := queries.NewGetPackageQueryHandler(store, testLogger())

	query, err := queries.NewGetPackageQuery(parent.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, response.Children, 2)

	childIDs := make(map[string]bool, len(response.Children))
	for _, child := range response.Children {
		childIDs[child.ID.String()] = true
	}
	assert.True(t, childIDs[first.ID().String()])
	assert.True(t, childIDs[second.ID().String()])
}

func TestGetPackageQueryHandler_Handle_ResolvesParent(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, child, parent)

	h := queries.NewGetPackageQueryHandler(store, testLogger())

	query, err := queries.NewGetPackageQuery(child.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.NotNil(t, response.ParentID)
	assert.True(t, response.ParentID.IsEqual(parent.ID()))
	require.NotNil(t, response.Parent)
	assert.True(t, response.Parent.ID.IsEqual(parent.ID()))
	assert.True(t, response.Parent.CustomerID.IsEqual(parent.CustomerID()))
}

func TestGetPackageQueryHandler_Handle_SkipsDanglingParent(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	child := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, child, parent)
	require.NoError(t, store.DeletePackage(ctx, parent.ID()))

	h := queries.NewGetPackageQueryHandler(store, testLogger())

	query, err := queries.NewGetPackageQuery(child.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.NotNil(t, response.ParentID)
	assert.Nil(t, response.Parent)
}

func TestGetPackageQueryHandler_Handle_SkipsDanglingChild(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	kept := seedPackage(t, store)
	gone := seedPackage(t, store)
	parent := seedPackage(t, store)
	consolidateSeeded(t, store, kept, parent)
	consolidateSeeded(t, store, gone, parent)
	require.NoError(t, store.DeletePackage(ctx, gone.ID()))

	h := queries.NewGetPackageQueryHandler(store, testLogger())

	query, err := queries.NewGetPackageQuery(parent.ID())
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, response.Children, 1)
	assert.True(t, response.Children[0].ID.IsEqual(kept.ID()))
}

func TestGetPackageQueryHandler_Handle_PackageNotFound(t *testing.T) {
	h := queries.NewGetPackageQueryHandler(memory.NewStore(), testLogger())

	query, err := queries.NewGetPackageQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetPackageQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetPackageQueryHandler(memory.NewStore(), testLogger())

	_, err := h.Handle(t.Context(), queries.GetPackageQuery{})
	require.Error(t, err)
}
