package kernel_test

import (
	"testing"
	"time"

	"freightdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFromString(t *testing.T) {
	t.Run("parses_canonical_layout", func(t *testing.T) {
		d, err := kernel.DateFromString("2025-03-14")

		require.NoError(t, err)
		assert.Equal(t, "2025-03-14", d.String())
	})

	t.Run("rejects_invalid_input", func(t *testing.T) {
		testCases := []string{"", "14.03.2025", "2025-13-01", "not a date"}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				_, err := kernel.DateFromString(tc)
				assert.Error(t, err)
			})
		}
	})
}

func TestDateOf_NormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+0", 0)
	late := time.Date(2025, time.March, 14, 23, 59, 59, 0, loc)

	d := kernel.DateOf(late)

	assert.Equal(t, "2025-03-14", d.String())
	assert.True(t, d.IsEqual(kernel.NewDate(2025, time.March, 14)))
}

func TestDate_Before(t *testing.T) {
	earlier := kernel.NewDate(2025, time.January, 1)
	later := kernel.NewDate(2025, time.June, 30)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestDate_Validate(t *testing.T) {
	t.Run("constructed_date_is_valid", func(t *testing.T) {
		assert.NoError(t, kernel.Today().Validate())
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var d kernel.Date

		err := d.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrDateIsNotConstructed)
		assert.True(t, d.IsZero())
	})
}
