package queries_test

// Query handler tests run against the in-memory store seeded directly, the
// same way the command handler tests do. Drifted state (stale index entries,
// dangling references) is injected by writing the inconsistent records by hand.

import (
	"io"
	"log/slog"
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedPackage(t *testing.T, store *memory.Store) *packages.Package {
	t.Helper()
	pkg, err := packages.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 3, 14),
		decimal.NewFromFloat(2.5), "Rotterdam",
	)
	require.NoError(t, err)
	require.NoError(t, store.PutPackage(t.Context(), pkg))
	for _, entry := range packages.IndexEntriesOf(pkg) {
		require.NoError(t, store.PutIndexEntry(t.Context(), entry))
	}
	return pkg
}

func seedLoad(t *testing.T, store *memory.Store) *load.Load {
	t.Helper()
	ld, err := load.NewLoad(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, store.PutLoad(t.Context(), ld))
	return ld
}

func assignSeeded(t *testing.T, store *memory.Store, pkg *packages.Package, ld *load.Load) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, ld.AddMember(pkg.ID()))
	require.NoError(t, pkg.AssignToLoad(ld.ID()))
	ld.RefreshTotals([]decimal.Decimal{pkg.Weight()})
	require.NoError(t, store.PutLoad(ctx, ld))
	require.NoError(t, store.PutPackage(ctx, pkg))
}

func consolidateSeeded(t *testing.T, store *memory.Store, child, parent *packages.Package) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, parent.AddChild(child.ID()))
	require.NoError(t, child.SetParent(parent.ID()))
	require.NoError(t, store.PutPackage(ctx, parent))
	require.NoError(t, store.PutPackage(ctx, child))
}
