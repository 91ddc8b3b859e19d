package redis_test

import (
	"testing"

	redisadapter "freightdesk/internal/adapters/out/redis"
	"freightdesk/internal/adapters/out/storetest"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *redisadapter.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisadapter.NewStore(client)
}

func TestRedisStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) ports.EntityStore {
		return newTestStore(t)
	})
}

func TestRedisStore_PutRewritesOptionalFields(t *testing.T) {
	// A put must clear hash fields the aggregate no longer carries, not
	// merge over the previous record.
	ctx := t.Context()
	store := newTestStore(t)

	loadID := kernel.NewUUID()
	pkg, err := packages.RestorePackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 6, 1),
		packages.StatusReady, &loadID, nil, nil,
		decimal.NewFromInt(3), "Utrecht", "", "",
	)
	require.NoError(t, err)
	require.NoError(t, store.PutPackage(ctx, pkg))

	pkg.Unassign()
	require.NoError(t, store.PutPackage(ctx, pkg))

	got, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Nil(t, got.LoadID())
}

func TestRedisStore_LoadScheduleRoundTrip(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)

	ld, err := load.NewLoad(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, ld.SetDeliveryDate("Rotterdam", kernel.NewDate(2025, 7, 4)))
	require.NoError(t, ld.SetDefaultDeliveryDate(kernel.NewDate(2025, 7, 6)))
	require.NoError(t, store.PutLoad(ctx, ld))

	got, err := store.GetLoad(ctx, ld.ID())
	require.NoError(t, err)

	cityDate := got.DeliveryDateFor("Rotterdam")
	require.NotNil(t, cityDate)
	assert.Equal(t, "2025-07-04", cityDate.String())

	fallback := got.DeliveryDateFor("Eindhoven")
	require.NotNil(t, fallback)
	assert.Equal(t, "2025-07-06", fallback.String())
}

func TestRedisStore_ReverseIndexTracksEntries(t *testing.T) {
	ctx := t.Context()
	store := newTestStore(t)

	packageID := kernel.NewUUID()
	entry := packages.IndexEntry{
		Kind:      packages.IndexKindStatus,
		Key:       "ready",
		PackageID: packageID,
	}
	require.NoError(t, store.PutIndexEntry(ctx, entry))

	entries, err := store.ListIndexEntriesFor(ctx, packageID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsEqual(entry))

	require.NoError(t, store.DeleteIndexEntry(ctx, entry))

	entries, err = store.ListIndexEntriesFor(ctx, packageID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
