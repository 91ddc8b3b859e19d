// Package storetest provides the shared EntityStore contract suite. Every
// backend adapter (memory, redis, postgres) runs the same suite, so the
// engine's storage assumptions are asserted backend-agnostically.
package storetest

import (
	"testing"

	"freightdesk/internal/core/domain/model/customer"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/core/ports"
	"freightdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory builds a fresh, empty store for one subtest.
type Factory func(t *testing.T) ports.EntityStore

// Run executes the full EntityStore contract against the given backend.
func Run(t *testing.T, factory Factory) {
	t.Run("package_round_trip", func(t *testing.T) { testPackageRoundTrip(t, factory(t)) })
	t.Run("package_not_found", func(t *testing.T) { testPackageNotFound(t, factory(t)) })
	t.Run("package_put_replaces", func(t *testing.T) { testPackagePutReplaces(t, factory(t)) })
	t.Run("package_delete_idempotent", func(t *testing.T) { testPackageDeleteIdempotent(t, factory(t)) })
	t.Run("package_list_ids", func(t *testing.T) { testPackageListIDs(t, factory(t)) })
	t.Run("load_round_trip", func(t *testing.T) { testLoadRoundTrip(t, factory(t)) })
	t.Run("load_not_found", func(t *testing.T) { testLoadNotFound(t, factory(t)) })
	t.Run("customer_round_trip", func(t *testing.T) { testCustomerRoundTrip(t, factory(t)) })
	t.Run("index_round_trip", func(t *testing.T) { testIndexRoundTrip(t, factory(t)) })
	t.Run("index_idempotent_writes", func(t *testing.T) { testIndexIdempotentWrites(t, factory(t)) })
	t.Run("transact_executes_fn", func(t *testing.T) { testTransactExecutesFn(t, factory(t)) })
}

func newSuitePackage(t *testing.T) *packages.Package {
	t.Helper()
	pkg, err := packages.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 3, 14),
		decimal.NewFromFloat(2.5), "Rotterdam",
	)
	require.NoError(t, err)
	return pkg
}

func testPackageRoundTrip(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	loadID := kernel.NewUUID()
	parentID := kernel.NewUUID()
	child := kernel.NewUUID()

	pkg, err := packages.RestorePackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 3, 14),
		packages.StatusInTransit, &loadID, nil, nil,
		decimal.NewFromFloat(2.5), "Rotterdam", "purchased", "paid",
	)
	require.NoError(t, err)

	require.NoError(t, store.PutPackage(ctx, pkg))

	got, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	assert.True(t, got.IsEqual(pkg))
	assert.True(t, got.CustomerID().IsEqual(pkg.CustomerID()))
	assert.True(t, got.ReceivedDate().IsEqual(pkg.ReceivedDate()))
	assert.Equal(t, packages.StatusInTransit, got.Status())
	require.NotNil(t, got.LoadID())
	assert.True(t, got.LoadID().IsEqual(loadID))
	assert.Nil(t, got.ParentID())
	assert.True(t, got.Weight().Equal(pkg.Weight()))
	assert.Equal(t, "Rotterdam", got.DestinationCity())
	assert.Equal(t, "purchased", got.LabelStatus())
	assert.Equal(t, "paid", got.PaymentStatus())

	// A consolidation parent round-trips its ordered children.
	parent, err := packages.RestorePackage(
		parentID, kernel.NewUUID(), kernel.NewDate(2025, 3, 14),
		packages.StatusReady, nil, nil, []kernel.UUID{child},
		decimal.Zero, "", "", "",
	)
	require.NoError(t, err)
	require.NoError(t, store.PutPackage(ctx, parent))

	gotParent, err := store.GetPackage(ctx, parentID)
	require.NoError(t, err)
	require.Len(t, gotParent.ChildIDs(), 1)
	assert.True(t, gotParent.ChildIDs()[0].IsEqual(child))
}

func testPackageNotFound(t *testing.T, store ports.EntityStore) {
	_, err := store.GetPackage(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func testPackagePutReplaces(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	pkg := newSuitePackage(t)
	require.NoError(t, store.PutPackage(ctx, pkg))

	require.NoError(t, pkg.ChangeStatus(packages.StatusInTransit))
	require.NoError(t, store.PutPackage(ctx, pkg))

	got, err := store.GetPackage(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Equal(t, packages.StatusInTransit, got.Status())
}

func testPackageDeleteIdempotent(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	pkg := newSuitePackage(t)
	require.NoError(t, store.PutPackage(ctx, pkg))

	require.NoError(t, store.DeletePackage(ctx, pkg.ID()))
	require.NoError(t, store.DeletePackage(ctx, pkg.ID())) // absent, still no error

	_, err := store.GetPackage(ctx, pkg.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func testPackageListIDs(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	first := newSuitePackage(t)
	second := newSuitePackage(t)
	require.NoError(t, store.PutPackage(ctx, first))
	require.NoError(t, store.PutPackage(ctx, second))

	ids, err := store.ListPackageIDs(ctx)
	require.NoError(t, err)

	assert.Len(t, ids, 2)
	assert.True(t, containsID(ids, first.ID()))
	assert.True(t, containsID(ids, second.ID()))
}

func testLoadRoundTrip(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	member := kernel.NewUUID()

	ld, err := load.RestoreLoad(
		kernel.NewUUID(), load.StatusInTransit,
		[]kernel.UUID{member}, 1, decimal.NewFromFloat(2.5),
		map[string]kernel.Date{"Antwerp": kernel.NewDate(2025, 7, 1)},
		kernel.NewDate(2025, 7, 2),
	)
	require.NoError(t, err)

	require.NoError(t, store.PutLoad(ctx, ld))

	got, err := store.GetLoad(ctx, ld.ID())
	require.NoError(t, err)
	assert.Equal(t, load.StatusInTransit, got.Status())
	require.Len(t, got.Membership(), 1)
	assert.True(t, got.Membership()[0].IsEqual(member))
	assert.Equal(t, 1, got.TotalPackages())
	assert.True(t, got.TotalWeight().Equal(decimal.NewFromFloat(2.5)))
	require.NotNil(t, got.DeliveryDateFor("Antwerp"))
	assert.Equal(t, "2025-07-01", got.DeliveryDateFor("Antwerp").String())
	require.NotNil(t, got.DefaultDeliveryDate())
	assert.Equal(t, "2025-07-02", got.DefaultDeliveryDate().String())

	ids, err := store.ListLoadIDs(ctx)
	require.NoError(t, err)
	assert.True(t, containsID(ids, ld.ID()))

	require.NoError(t, store.DeleteLoad(ctx, ld.ID()))
	_, err = store.GetLoad(ctx, ld.ID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func testLoadNotFound(t *testing.T, store ports.EntityStore) {
	_, err := store.GetLoad(t.Context(), kernel.NewUUID())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func testCustomerRoundTrip(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Acme Logistics BV")
	require.NoError(t, err)

	require.NoError(t, store.PutCustomer(ctx, c))

	got, err := store.GetCustomer(ctx, c.ID())
	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(c.ID()))
	assert.Equal(t, "Acme Logistics BV", got.Name())

	_, err = store.GetCustomer(ctx, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func testIndexRoundTrip(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	pkg := newSuitePackage(t)

	for _, entry := range packages.IndexEntriesOf(pkg) {
		require.NoError(t, store.PutIndexEntry(ctx, entry))
	}

	// Lookup by each index returns the package.
	byCustomer, err := store.ListPackagesByIndex(ctx, packages.IndexKindCustomer, pkg.CustomerID().String())
	require.NoError(t, err)
	assert.True(t, containsID(byCustomer, pkg.ID()))

	byStatus, err := store.ListPackagesByIndex(ctx, packages.IndexKindStatus, "ready")
	require.NoError(t, err)
	assert.True(t, containsID(byStatus, pkg.ID()))

	byDate, err := store.ListPackagesByIndex(ctx, packages.IndexKindReceivedDate, pkg.ReceivedDate().String())
	require.NoError(t, err)
	assert.True(t, containsID(byDate, pkg.ID()))

	// The reverse lookup enumerates exactly the three entries.
	entries, err := store.ListIndexEntriesFor(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// Deleting one entry removes only that entry.
	statusEntry := packages.IndexEntry{Kind: packages.IndexKindStatus, Key: "ready", PackageID: pkg.ID()}
	require.NoError(t, store.DeleteIndexEntry(ctx, statusEntry))

	byStatus, err = store.ListPackagesByIndex(ctx, packages.IndexKindStatus, "ready")
	require.NoError(t, err)
	assert.False(t, containsID(byStatus, pkg.ID()))

	entries, err = store.ListIndexEntriesFor(ctx, pkg.ID())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func testIndexIdempotentWrites(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	entry := packages.IndexEntry{
		Kind:      packages.IndexKindStatus,
		Key:       "ready",
		PackageID: kernel.NewUUID(),
	}

	// Double put keeps exactly one entry.
	require.NoError(t, store.PutIndexEntry(ctx, entry))
	require.NoError(t, store.PutIndexEntry(ctx, entry))

	entries, err := store.ListIndexEntriesFor(ctx, entry.PackageID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Double delete is a no-op after the first.
	require.NoError(t, store.DeleteIndexEntry(ctx, entry))
	require.NoError(t, store.DeleteIndexEntry(ctx, entry))

	entries, err = store.ListIndexEntriesFor(ctx, entry.PackageID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func testTransactExecutesFn(t *testing.T, store ports.EntityStore) {
	ctx := t.Context()
	pkg := newSuitePackage(t)

	err := store.Transact(ctx, func(s ports.EntityStore) error {
		return s.PutPackage(ctx, pkg)
	})
	require.NoError(t, err)

	_, err = store.GetPackage(ctx, pkg.ID())
	assert.NoError(t, err)
}

func containsID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
