package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"freightdesk/internal/adapters/out/memory"
	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"
	"freightdesk/internal/core/domain/model/packages"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Handler tests run against the in-memory adapter: the handlers' correctness
// claims are about the state left behind across several store writes, which
// state assertions capture better than call scripts. Collaborators stay
// mocked.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockCustomerDirectory struct{ mock.Mock }

func (m *MockCustomerDirectory) CustomerExists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) PackageAssigned(ctx context.Context, packageID, loadID kernel.UUID) {
	m.Called(ctx, packageID, loadID)
}

func (m *MockNotifier) PackageUnassigned(ctx context.Context, packageID, loadID kernel.UUID) {
	m.Called(ctx, packageID, loadID)
}

func (m *MockNotifier) ShipmentStatusChanged(
	ctx context.Context,
	packageID kernel.UUID,
	from, to packages.ShipmentStatus,
) {
	m.Called(ctx, packageID, from, to)
}

func (m *MockNotifier) PackageDeleted(ctx context.Context, packageID kernel.UUID) {
	m.Called(ctx, packageID)
}

// relaxedNotifier accepts any notification; for tests that do not assert on
// dispatch.
func relaxedNotifier() *MockNotifier {
	notifier := new(MockNotifier)
	notifier.On("PackageAssigned", mock.Anything, mock.Anything, mock.Anything).Maybe()
	notifier.On("PackageUnassigned", mock.Anything, mock.Anything, mock.Anything).Maybe()
	notifier.On("ShipmentStatusChanged", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	notifier.On("PackageDeleted", mock.Anything, mock.Anything).Maybe()
	return notifier
}

func seedPackage(t *testing.T, store *memory.Store) *packages.Package {
	t.Helper()
	pkg, err := packages.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewDate(2025, 3, 14),
		decimal.NewFromFloat(2.5), "Rotterdam",
	)
	require.NoError(t, err)
	require.NoError(t, store.PutPackage(t.Context(), pkg))
	seedIndexEntries(t, store, pkg)
	return pkg
}

func seedIndexEntries(t *testing.T, store *memory.Store, pkg *packages.Package) {
	t.Helper()
	for _, entry := range packages.IndexEntriesOf(pkg) {
		require.NoError(t, store.PutIndexEntry(t.Context(), entry))
	}
}

func seedLoad(t *testing.T, store *memory.Store) *load.Load {
	t.Helper()
	ld, err := load.NewLoad(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, store.PutLoad(t.Context(), ld))
	return ld
}

// assignSeeded puts the package on the load the way a completed assignment
// would have, both sides consistent.
func assignSeeded(t *testing.T, store *memory.Store, pkg *packages.Package, ld *load.Load) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, ld.AddMember(pkg.ID()))
	require.NoError(t, pkg.AssignToLoad(ld.ID()))
	ld.RefreshTotals([]decimal.Decimal{pkg.Weight()})
	require.NoError(t, store.PutLoad(ctx, ld))
	require.NoError(t, store.PutPackage(ctx, pkg))
}

// consolidateSeeded links child under parent, both sides consistent.
func consolidateSeeded(t *testing.T, store *memory.Store, child, parent *packages.Package) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, parent.AddChild(child.ID()))
	require.NoError(t, child.SetParent(parent.ID()))
	require.NoError(t, store.PutPackage(ctx, parent))
	require.NoError(t, store.PutPackage(ctx, child))
}

func indexEntriesFor(t *testing.T, store *memory.Store, packageID kernel.UUID) []packages.IndexEntry {
	t.Helper()
	entries, err := store.ListIndexEntriesFor(t.Context(), packageID)
	require.NoError(t, err)
	return entries
}

func requireIndexed(t *testing.T, store *memory.Store, pkg *packages.Package) {
	t.Helper()
	stored := indexEntriesFor(t, store, pkg.ID())
	require.Len(t, stored, len(packages.IndexEntriesOf(pkg)))
	for _, desired := range packages.IndexEntriesOf(pkg) {
		found := false
		for _, entry := range stored {
			if entry.IsEqual(desired) {
				found = true
				break
			}
		}
		require.True(t, found, "missing index entry %s", desired.String())
	}
}
