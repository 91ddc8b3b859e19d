package memory_test

import (
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/adapters/out/storetest"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	storetest.Run(t, func(_ *testing.T) ports.EntityStore {
		return memory.NewStore()
	})
}

func TestMemoryStore_RecordSemantics(t *testing.T) {
	// Mutating an aggregate after Get must not change the stored record
	// until it is put back.
	ctx := t.Context()
	store := memory.NewStore()
	pkg := newStorePackage(t)
	require.NoError(t, store.PutPackage(ctx, pkg))

	got, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	require.NoError(t, got.ChangeStatus(packages.StatusInTransit))

	stored, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Equal(t, packages.StatusReady, stored.Status())
}
