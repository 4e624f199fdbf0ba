package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDailySlots(t *testing.T) {
	slots := GenerateDailySlots()

	assert.Len(t, slots, 16)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:30", slots[len(slots)-1])

	// strictly ascending, no duplicates
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestAvailableSlots(t *testing.T) {
	t.Run("no bookings returns full day", func(t *testing.T) {
		assert.Len(t, AvailableSlots(nil), 16)
	})

	t.Run("booked times are removed", func(t *testing.T) {
		available := AvailableSlots([]string{"09:00", "14:30"})

		assert.Len(t, available, 14)
		assert.NotContains(t, available, "09:00")
		assert.NotContains(t, available, "14:30")
		assert.Contains(t, available, "09:30")
	})

	t.Run("off-grid booked time removes nothing", func(t *testing.T) {
		assert.Len(t, AvailableSlots([]string{"09:15"}), 16)
	})

	t.Run("fully booked day is empty not nil", func(t *testing.T) {
		available := AvailableSlots(GenerateDailySlots())

		assert.NotNil(t, available)
		assert.Empty(t, available)
	})
}

func TestIsCanonicalSlot(t *testing.T) {
	assert.True(t, IsCanonicalSlot("09:00"))
	assert.True(t, IsCanonicalSlot("16:30"))

	assert.False(t, IsCanonicalSlot("08:30"), "before opening")
	assert.False(t, IsCanonicalSlot("17:00"), "at close")
	assert.False(t, IsCanonicalSlot("09:15"), "off the half-hour grid")
	assert.False(t, IsCanonicalSlot("9:00"), "not zero padded")
	assert.False(t, IsCanonicalSlot(""))
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2026-09-01")
	assert.NoError(t, err)
	assert.Equal(t, "2026-09-01", got)

	for _, bad := range []string{"", "01-09-2026", "2026/09/01", "2026-13-01", "tomorrow"} {
		_, err := NormalizeDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestPastDate(t *testing.T) {
	assert.True(t, pastDate("2026-08-28", "2026-08-29"))
	assert.False(t, pastDate("2026-08-29", "2026-08-29"), "same-day booking is allowed")
	assert.False(t, pastDate("2026-08-30", "2026-08-29"))
	assert.True(t, pastDate("2025-12-31", "2026-01-01"), "year boundary")
}

func TestSlotsCacheKey(t *testing.T) {
	assert.Equal(t, "SLOTS:7:2026-09-01", SlotsCacheKey(7, "2026-09-01"))
}
