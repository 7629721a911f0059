package booking

import "time"

// ===============================
// Slot Selection State
// ===============================

// SlotSelection holds the chosen date and slot for one booking session.
// Changing the date regenerates the slot list and drops any prior choice,
// so a non-nil selected slot is always a member of the current list.
type SlotSelection struct {
	gen SlotGenerator

	date     time.Time
	slots    []TimeSlot
	selected *TimeSlot
}

func NewSlotSelection(gen SlotGenerator, today time.Time) *SlotSelection {
	s := &SlotSelection{gen: gen}
	s.SetDate(today)
	return s
}

// SetDate replaces the date, clears the selected slot unconditionally and
// regenerates the slot list.
func (s *SlotSelection) SetDate(d time.Time) {
	s.date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	s.slots = s.gen.Generate(s.date)
	s.selected = nil
}

// SelectSlot picks a slot by id. Unavailable slots and ids outside the
// current list are refused without changing the selection.
func (s *SlotSelection) SelectSlot(id int) bool {
	for i := range s.slots {
		if s.slots[i].ID != id {
			continue
		}
		if !s.slots[i].Available {
			return false
		}
		s.selected = &s.slots[i]
		return true
	}
	return false
}

func (s *SlotSelection) Date() time.Time {
	return s.date
}

func (s *SlotSelection) Slots() []TimeSlot {
	return s.slots
}

// Selected returns the chosen slot, or nil when none is picked.
func (s *SlotSelection) Selected() *TimeSlot {
	return s.selected
}
