package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns a fixed slot list so selection behavior is
// deterministic.
type stubGenerator struct {
	slots []TimeSlot
}

func (g *stubGenerator) Generate(day time.Time) []TimeSlot {
	out := make([]TimeSlot, len(g.slots))
	copy(out, g.slots)
	return out
}

func fixedSlots() []TimeSlot {
	return []TimeSlot{
		{ID: 1, Time: "8:00 AM", Available: true},
		{ID: 2, Time: "8:30 AM", Available: false},
		{ID: 3, Time: "9:00 AM", Available: true},
	}
}

func TestNewSlotSelectionGeneratesForToday(t *testing.T) {
	today := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, today)

	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), sel.Date())
	assert.Len(t, sel.Slots(), 3)
	assert.Nil(t, sel.Selected())
}

func TestSelectSlotRefusesUnavailable(t *testing.T) {
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, time.Now())

	assert.False(t, sel.SelectSlot(2))
	assert.Nil(t, sel.Selected())
}

func TestSelectSlotRefusesUnknownID(t *testing.T) {
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, time.Now())

	assert.False(t, sel.SelectSlot(99))
	assert.Nil(t, sel.Selected())
}

func TestSelectSlotKeepsPriorChoiceOnRefusal(t *testing.T) {
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, time.Now())

	require.True(t, sel.SelectSlot(1))
	assert.False(t, sel.SelectSlot(2))

	require.NotNil(t, sel.Selected())
	assert.Equal(t, 1, sel.Selected().ID)
}

func TestSetDateClearsSelection(t *testing.T) {
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, time.Now())

	require.True(t, sel.SelectSlot(3))
	require.NotNil(t, sel.Selected())

	sel.SetDate(time.Now().AddDate(0, 0, 1))

	assert.Nil(t, sel.Selected())
}

func TestSelectedSlotIsMemberOfCurrentList(t *testing.T) {
	sel := NewSlotSelection(&stubGenerator{slots: fixedSlots()}, time.Now())

	require.True(t, sel.SelectSlot(3))

	found := false
	for _, s := range sel.Slots() {
		if s.ID == sel.Selected().ID {
			found = true
		}
	}
	assert.True(t, found)
}
