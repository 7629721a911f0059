package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotCount(t *testing.T) {
	gen := NewSeededSlotGenerator(42)
	slots := gen.Generate(time.Now())

	require.Len(t, slots, SlotsPerDay)
	assert.Equal(t, 18, SlotsPerDay)
}

func TestGenerateSlotIDsAreSequential(t *testing.T) {
	gen := NewSeededSlotGenerator(42)
	slots := gen.Generate(time.Now())

	seen := make(map[int]bool, len(slots))
	for i, slot := range slots {
		assert.Equal(t, i+1, slot.ID)
		assert.False(t, seen[slot.ID], "duplicate slot id %d", slot.ID)
		seen[slot.ID] = true
	}
}

func TestGenerateSlotLabels(t *testing.T) {
	gen := NewSeededSlotGenerator(1)
	slots := gen.Generate(time.Now())

	assert.Equal(t, "8:00 AM", slots[0].Time)
	assert.Equal(t, "8:30 AM", slots[1].Time)
	assert.Equal(t, "9:00 AM", slots[2].Time)
	assert.Equal(t, "12:00 PM", slots[8].Time)
	assert.Equal(t, "12:30 PM", slots[9].Time)
	assert.Equal(t, "4:30 PM", slots[len(slots)-1].Time)
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	day := time.Now()

	a := NewSeededSlotGenerator(7).Generate(day)
	b := NewSeededSlotGenerator(7).Generate(day)

	assert.Equal(t, a, b)
}

func TestFormatSlotTime(t *testing.T) {
	cases := []struct {
		hour   int
		minute int
		want   string
	}{
		{8, 0, "8:00 AM"},
		{8, 30, "8:30 AM"},
		{11, 30, "11:30 AM"},
		{12, 0, "12:00 PM"},
		{12, 30, "12:30 PM"},
		{13, 0, "1:00 PM"},
		{16, 30, "4:30 PM"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatSlotTime(tc.hour, tc.minute))
	}
}
