package load_test

import (
	"testing"

	"freightdesk/internal/core/domain/model/kernel"
	"freightdesk/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoad(t *testing.T) *load.Load {
	t.Helper()
	ld, err := load.NewLoad(kernel.NewUUID())
	require.NoError(t, err)
	return ld
}

func TestNewLoad(t *testing.T) {
	t.Run("creates_planned_empty_load", func(t *testing.T) {
		id := kernel.NewUUID()

		ld, err := load.NewLoad(id)

		require.NoError(t, err)
		assert.True(t, ld.ID().IsEqual(id))
		assert.Equal(t, load.StatusPlanned, ld.Status())
		assert.Empty(t, ld.Membership())
		assert.Equal(t, 0, ld.TotalPackages())
		assert.True(t, ld.TotalWeight().IsZero())
		assert.Nil(t, ld.DefaultDeliveryDate())
		assert.NoError(t, ld.Validate())
	})

	t.Run("rejects_zero_id", func(t *testing.T) {
		_, err := load.NewLoad(kernel.UUID{})
		assert.Error(t, err)
	})
}

func TestLoad_Validate_NotConstructed(t *testing.T) {
	var ld load.Load

	err := ld.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, load.ErrLoadIsNotConstructed)
}

func TestLoad_Membership(t *testing.T) {
	t.Run("keeps_assignment_order_and_deduplicates", func(t *testing.T) {
		ld := newTestLoad(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, ld.AddMember(first))
		require.NoError(t, ld.AddMember(second))
		require.NoError(t, ld.AddMember(first)) // idempotent

		members := ld.Membership()
		require.Len(t, members, 2)
		assert.True(t, members[0].IsEqual(first))
		assert.True(t, members[1].IsEqual(second))
		assert.Equal(t, 1, ld.MemberCountOf(first))
	})

	t.Run("remove_member", func(t *testing.T) {
		ld := newTestLoad(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, ld.AddMember(first))
		require.NoError(t, ld.AddMember(second))

		ld.RemoveMember(first)

		assert.False(t, ld.HasMember(first))
		assert.True(t, ld.HasMember(second))
		assert.Equal(t, 0, ld.MemberCountOf(first))

		// Removing an absent member is a no-op.
		ld.RemoveMember(first)
		assert.Len(t, ld.Membership(), 1)
	})

	t.Run("replace_membership_deduplicates", func(t *testing.T) {
		ld := newTestLoad(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, ld.AddMember(kernel.NewUUID()))

		require.NoError(t, ld.ReplaceMembership([]kernel.UUID{first, second, first}))

		members := ld.Membership()
		require.Len(t, members, 2)
		assert.True(t, members[0].IsEqual(first))
	})
}

func TestLoad_RefreshTotals(t *testing.T) {
	ld := newTestLoad(t)
	require.NoError(t, ld.AddMember(kernel.NewUUID()))
	require.NoError(t, ld.AddMember(kernel.NewUUID()))

	ld.RefreshTotals([]decimal.Decimal{
		decimal.NewFromFloat(1.5),
		decimal.NewFromFloat(2.25),
	})

	assert.Equal(t, 2, ld.TotalPackages())
	assert.True(t, ld.TotalWeight().Equal(decimal.NewFromFloat(3.75)))

	// Totals follow the membership, never the other way around.
	ld.RemoveMember(ld.Membership()[0])
	ld.RefreshTotals([]decimal.Decimal{decimal.NewFromFloat(2.25)})

	assert.Equal(t, 1, ld.TotalPackages())
	assert.True(t, ld.TotalWeight().Equal(decimal.NewFromFloat(2.25)))
}

func TestLoad_ChangeStatus(t *testing.T) {
	t.Run("forward_only_workflow", func(t *testing.T) {
		ld := newTestLoad(t)

		require.NoError(t, ld.ChangeStatus(load.StatusInTransit))
		require.NoError(t, ld.ChangeStatus(load.StatusDelivered))
		require.NoError(t, ld.ChangeStatus(load.StatusComplete))

		assert.Equal(t, load.StatusComplete, ld.Status())
	})

	t.Run("in_transit_may_complete_directly", func(t *testing.T) {
		ld := newTestLoad(t)

		require.NoError(t, ld.ChangeStatus(load.StatusInTransit))
		require.NoError(t, ld.ChangeStatus(load.StatusComplete))

		assert.Equal(t, load.StatusComplete, ld.Status())
	})

	t.Run("rejects_backward_and_skipped_transitions", func(t *testing.T) {
		ld := newTestLoad(t)

		assert.Error(t, ld.ChangeStatus(load.StatusDelivered)) // skips in_transit
		assert.Error(t, ld.ChangeStatus(load.StatusPlanned))   // self

		require.NoError(t, ld.ChangeStatus(load.StatusInTransit))
		assert.Error(t, ld.ChangeStatus(load.StatusPlanned)) // backward
	})
}

func TestLoad_DeliveryDateFor(t *testing.T) {
	cityDate := kernel.NewDate(2025, 6, 1)
	defaultDate := kernel.NewDate(2025, 6, 3)

	t.Run("prefers_city_schedule_entry", func(t *testing.T) {
		ld := newTestLoad(t)
		require.NoError(t, ld.SetDeliveryDate("Rotterdam", cityDate))
		require.NoError(t, ld.SetDefaultDeliveryDate(defaultDate))

		got := ld.DeliveryDateFor("Rotterdam")

		require.NotNil(t, got)
		assert.True(t, got.IsEqual(cityDate))
	})

	t.Run("falls_back_to_default", func(t *testing.T) {
		ld := newTestLoad(t)
		require.NoError(t, ld.SetDefaultDeliveryDate(defaultDate))

		got := ld.DeliveryDateFor("Hamburg")

		require.NotNil(t, got)
		assert.True(t, got.IsEqual(defaultDate))
	})

	t.Run("nil_when_no_schedule_and_no_default", func(t *testing.T) {
		ld := newTestLoad(t)

		assert.Nil(t, ld.DeliveryDateFor("Hamburg"))
	})

	t.Run("rejects_empty_city", func(t *testing.T) {
		ld := newTestLoad(t)
		assert.Error(t, ld.SetDeliveryDate("", cityDate))
	})
}

func TestRestoreLoad(t *testing.T) {
	t.Run("rebuilds_full_state", func(t *testing.T) {
		id := kernel.NewUUID()
		member := kernel.NewUUID()
		schedule := map[string]kernel.Date{"Antwerp": kernel.NewDate(2025, 7, 1)}

		ld, err := load.RestoreLoad(
			id, load.StatusInTransit,
			[]kernel.UUID{member, member}, // duplicate from a racing writer
			1, decimal.NewFromFloat(4.5),
			schedule, kernel.NewDate(2025, 7, 2),
		)

		require.NoError(t, err)
		assert.Equal(t, load.StatusInTransit, ld.Status())
		assert.Len(t, ld.Membership(), 1)
		assert.Equal(t, 1, ld.TotalPackages())
		assert.True(t, ld.TotalWeight().Equal(decimal.NewFromFloat(4.5)))
		require.NotNil(t, ld.DeliveryDateFor("Antwerp"))
		assert.NoError(t, ld.Validate())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := load.RestoreLoad(
			kernel.NewUUID(), load.StatusUnknown, nil, 0, decimal.Zero, nil, kernel.Date{},
		)
		assert.Error(t, err)
	})
}
