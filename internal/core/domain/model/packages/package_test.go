package packages_test

import (
	"testing"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/packages"
	"freightdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPackage(t *testing.T) *packages.Package {
	t.Helper()
	pkg, err := packages.NewPackage(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.Today(),
		decimal.NewFromFloat(2.5),
		"Rotterdam",
	)
	require.NoError(t, err)
	return pkg
}

func TestNewPackage(t *testing.T) {
	t.Run("creates_ready_unassigned_package", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		received := kernel.Today()

		pkg, err := packages.NewPackage(id, customerID, received, decimal.NewFromInt(3), "Hamburg")

		require.NoError(t, err)
		assert.True(t, pkg.ID().IsEqual(id))
		assert.True(t, pkg.CustomerID().IsEqual(customerID))
		assert.True(t, pkg.ReceivedDate().IsEqual(received))
		assert.Equal(t, packages.StatusReady, pkg.Status())
		assert.Nil(t, pkg.LoadID())
		assert.Nil(t, pkg.ParentID())
		assert.Empty(t, pkg.ChildIDs())
		assert.Equal(t, "Hamburg", pkg.DestinationCity())
		assert.NoError(t, pkg.Validate())
	})

	t.Run("rejects_invalid_inputs", func(t *testing.T) {
		validID := kernel.NewUUID()
		validDate := kernel.Today()
		weight := decimal.NewFromInt(1)

		testCases := []struct {
			name  string
			setup func() error
		}{
			{
				name: "zero_id",
				setup: func() error {
					_, err := packages.NewPackage(kernel.UUID{}, validID, validDate, weight, "")
					return err
				},
			},
			{
				name: "zero_customer_id",
				setup: func() error {
					_, err := packages.NewPackage(validID, kernel.UUID{}, validDate, weight, "")
					return err
				},
			},
			{
				name: "zero_received_date",
				setup: func() error {
					_, err := packages.NewPackage(validID, kernel.NewUUID(), kernel.Date{}, weight, "")
					return err
				},
			},
			{
				name: "negative_weight",
				setup: func() error {
					_, err := packages.NewPackage(validID, kernel.NewUUID(), validDate, decimal.NewFromInt(-1), "")
					return err
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Error(t, tc.setup())
			})
		}
	})
}

func TestPackage_Validate_NotConstructed(t *testing.T) {
	var pkg packages.Package

	err := pkg.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, packages.ErrPackageIsNotConstructed)
}

func TestPackage_AssignToLoad(t *testing.T) {
	t.Run("assigns_and_reassigns", func(t *testing.T) {
		pkg := newTestPackage(t)
		firstLoad := kernel.NewUUID()
		secondLoad := kernel.NewUUID()

		require.NoError(t, pkg.AssignToLoad(firstLoad))
		require.NotNil(t, pkg.LoadID())
		assert.True(t, pkg.LoadID().IsEqual(firstLoad))
		assert.True(t, pkg.IsAssigned())

		// Reassignment overwrites the prior reference; membership cleanup
		// happens at the handler level.
		require.NoError(t, pkg.AssignToLoad(secondLoad))
		assert.True(t, pkg.LoadID().IsEqual(secondLoad))
	})

	t.Run("assignment_does_not_change_status", func(t *testing.T) {
		pkg := newTestPackage(t)

		require.NoError(t, pkg.AssignToLoad(kernel.NewUUID()))

		assert.Equal(t, packages.StatusReady, pkg.Status())
	})

	t.Run("rejects_zero_load_id", func(t *testing.T) {
		pkg := newTestPackage(t)
		assert.Error(t, pkg.AssignToLoad(kernel.UUID{}))
	})

	t.Run("unassign_clears_reference", func(t *testing.T) {
		pkg := newTestPackage(t)
		require.NoError(t, pkg.AssignToLoad(kernel.NewUUID()))

		pkg.Unassign()

		assert.Nil(t, pkg.LoadID())
		assert.False(t, pkg.IsAssigned())
	})
}

func TestPackage_SetParent(t *testing.T) {
	t.Run("sets_parent_reference", func(t *testing.T) {
		pkg := newTestPackage(t)
		parentID := kernel.NewUUID()

		require.NoError(t, pkg.SetParent(parentID))

		require.NotNil(t, pkg.ParentID())
		assert.True(t, pkg.ParentID().IsEqual(parentID))
		assert.True(t, pkg.IsConsolidated())
	})

	t.Run("rejects_self_reference", func(t *testing.T) {
		pkg := newTestPackage(t)

		err := pkg.SetParent(pkg.ID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidConsolidation)
	})

	t.Run("rejects_parent_with_children", func(t *testing.T) {
		pkg := newTestPackage(t)
		require.NoError(t, pkg.AddChild(kernel.NewUUID()))

		err := pkg.SetParent(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidConsolidation)
	})

	t.Run("clear_parent", func(t *testing.T) {
		pkg := newTestPackage(t)
		require.NoError(t, pkg.SetParent(kernel.NewUUID()))

		pkg.ClearParent()

		assert.Nil(t, pkg.ParentID())
	})
}

func TestPackage_AddChild(t *testing.T) {
	t.Run("keeps_children_ordered_and_deduplicated", func(t *testing.T) {
		pkg := newTestPackage(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, pkg.AddChild(first))
		require.NoError(t, pkg.AddChild(second))
		require.NoError(t, pkg.AddChild(first)) // idempotent

		children := pkg.ChildIDs()
		require.Len(t, children, 2)
		assert.True(t, children[0].IsEqual(first))
		assert.True(t, children[1].IsEqual(second))
		assert.True(t, pkg.HasChild(first))
		assert.True(t, pkg.HasChildren())
	})

	t.Run("rejects_self_reference", func(t *testing.T) {
		pkg := newTestPackage(t)

		err := pkg.AddChild(pkg.ID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidConsolidation)
	})

	t.Run("rejects_children_on_a_child", func(t *testing.T) {
		pkg := newTestPackage(t)
		require.NoError(t, pkg.SetParent(kernel.NewUUID()))

		err := pkg.AddChild(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidConsolidation)
	})

	t.Run("remove_child", func(t *testing.T) {
		pkg := newTestPackage(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, pkg.AddChild(first))
		require.NoError(t, pkg.AddChild(second))

		pkg.RemoveChild(first)

		children := pkg.ChildIDs()
		require.Len(t, children, 1)
		assert.True(t, children[0].IsEqual(second))

		// Removing an absent child is a no-op.
		pkg.RemoveChild(first)
		assert.Len(t, pkg.ChildIDs(), 1)
	})
}

func TestPackage_ChangeStatus(t *testing.T) {
	t.Run("follows_state_machine", func(t *testing.T) {
		pkg := newTestPackage(t)

		require.NoError(t, pkg.ChangeStatus(packages.StatusInTransit))
		require.NoError(t, pkg.ChangeStatus(packages.StatusDelivered))

		assert.Equal(t, packages.StatusDelivered, pkg.Status())
	})

	t.Run("rejects_invalid_transition", func(t *testing.T) {
		pkg := newTestPackage(t)

		err := pkg.ChangeStatus(packages.StatusDelivered)

		require.Error(t, err)
		assert.Equal(t, packages.StatusReady, pkg.Status())
	})
}

func TestRestorePackage(t *testing.T) {
	t.Run("rebuilds_full_state", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		loadID := kernel.NewUUID()
		childA := kernel.NewUUID()
		childB := kernel.NewUUID()
		received := kernel.NewDate(2025, 3, 14)

		pkg, err := packages.RestorePackage(
			id, customerID, received, packages.StatusInTransit,
			&loadID, nil, []kernel.UUID{childA, childB, childA},
			decimal.NewFromFloat(1.75), "Antwerp", "purchased", "paid",
		)

		require.NoError(t, err)
		assert.Equal(t, packages.StatusInTransit, pkg.Status())
		require.NotNil(t, pkg.LoadID())
		assert.True(t, pkg.LoadID().IsEqual(loadID))
		assert.Len(t, pkg.ChildIDs(), 2) // duplicate dropped
		assert.Equal(t, "purchased", pkg.LabelStatus())
		assert.Equal(t, "paid", pkg.PaymentStatus())
		assert.NoError(t, pkg.Validate())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := packages.RestorePackage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.Today(), packages.StatusUnknown,
			nil, nil, nil, decimal.Zero, "", "", "",
		)
		assert.Error(t, err)
	})
}

func TestPackage_Clone(t *testing.T) {
	pkg := newTestPackage(t)
	require.NoError(t, pkg.AssignToLoad(kernel.NewUUID()))
	child := kernel.NewUUID()
	require.NoError(t, pkg.AddChild(child))

	snapshot := pkg.Clone()

	// Mutating the original must not leak into the snapshot.
	pkg.Unassign()
	pkg.RemoveChild(child)
	require.NoError(t, pkg.ChangeStatus(packages.StatusInTransit))

	assert.NotNil(t, snapshot.LoadID())
	assert.Len(t, snapshot.ChildIDs(), 1)
	assert.Equal(t, packages.StatusReady, snapshot.Status())
	assert.NoError(t, snapshot.Validate())
}

func TestIndexEntriesOf(t *testing.T) {
	pkg := newTestPackage(t)

	entries := packages.IndexEntriesOf(pkg)

	require.Len(t, entries, 3)
	byKind := map[packages.IndexKind]packages.IndexEntry{}
	for _, e := range entries {
		assert.True(t, e.PackageID.IsEqual(pkg.ID()))
		byKind[e.Kind] = e
	}
	assert.Equal(t, pkg.CustomerID().String(), byKind[packages.IndexKindCustomer].Key)
	assert.Equal(t, pkg.ReceivedDate().String(), byKind[packages.IndexKindReceivedDate].Key)
	assert.Equal(t, "ready", byKind[packages.IndexKindStatus].Key)
}
