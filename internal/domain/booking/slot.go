package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// ===============================
// Time Slots
// ===============================

type TimeSlot struct {
	ID        int    `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotGenerator produces the candidate slots for one day. The random
// implementation below has no booking ledger behind it; a ledger-backed
// generator can be substituted without touching selection or flow code.
type SlotGenerator interface {
	Generate(day time.Time) []TimeSlot
}

const (
	workdayStartHour = 8  // 8 AM
	workdayEndHour   = 17 // 5 PM
	slotStepMinutes  = 30

	// 08:00 through 16:30 starts.
	SlotsPerDay = (workdayEndHour - workdayStartHour) * 60 / slotStepMinutes

	availableBias = 0.7
)

// RandomSlotGenerator marks each slot available by an independent draw
// with a fixed bias. Every call yields a fresh assignment.
type RandomSlotGenerator struct {
	rng *rand.Rand
}

func NewRandomSlotGenerator() *RandomSlotGenerator {
	return &RandomSlotGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededSlotGenerator fixes the draw sequence. Used by tests.
func NewSeededSlotGenerator(seed int64) *RandomSlotGenerator {
	return &RandomSlotGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *RandomSlotGenerator) Generate(day time.Time) []TimeSlot {
	slots := make([]TimeSlot, 0, SlotsPerDay)

	id := 1
	for hour := workdayStartHour; hour < workdayEndHour; hour++ {
		for minute := 0; minute < 60; minute += slotStepMinutes {
			slots = append(slots, TimeSlot{
				ID:        id,
				Time:      formatSlotTime(hour, minute),
				Available: g.rng.Float64() < availableBias,
			})
			id++
		}
	}

	return slots
}

// formatSlotTime renders a 12-hour clock label: "8:00 AM", "12:30 PM".
func formatSlotTime(hour, minute int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}
