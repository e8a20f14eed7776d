package schedule

import (
	"errors"
	"fmt"
)

// Slot is one schedulable hour of the day, identified by its start hour.
// The universe is fixed: 16 one-hour slots from 06:00 through 21:00
// (the last slot covers 21:00-22:00).
type Slot int

const (
	FirstSlotHour = 6
	LastSlotHour  = 21
	SlotCount     = LastSlotHour - FirstSlotHour + 1
)

var ErrSlotOutOfRange = errors.New("slot hour out of range")

func NewSlot(hour int) (Slot, error) {
	s := Slot(hour)
	if !s.IsValid() {
		return 0, ErrSlotOutOfRange
	}
	return s, nil
}

// ParseSlot accepts the wire form "HH:00".
func ParseSlot(value string) (Slot, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0, ErrSlotOutOfRange
	}
	if minute != 0 {
		return 0, ErrSlotOutOfRange
	}
	return NewSlot(hour)
}

func (s Slot) Hour() int {
	return int(s)
}

func (s Slot) IsValid() bool {
	return s >= FirstSlotHour && s <= LastSlotHour
}

// String returns the wire form "HH:00".
func (s Slot) String() string {
	return fmt.Sprintf("%02d:00", int(s))
}

func (s Slot) Successor() (Slot, bool) {
	if s >= LastSlotHour {
		return 0, false
	}
	return s + 1, true
}

func (s Slot) Predecessor() (Slot, bool) {
	if s <= FirstSlotHour {
		return 0, false
	}
	return s - 1, true
}

// Format renders the slot start in 12-hour display form, e.g. "9:00 AM",
// "12:00 PM", "2:00 PM".
func (s Slot) Format() string {
	hour := int(s)
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, meridiem)
}

func (s Slot) IsBusinessHours() bool {
	return s >= 9 && s < 17
}

// Period returns the named partition the slot belongs to.
func (s Slot) Period() Period {
	switch {
	case s <= 11:
		return PeriodMorning
	case s <= 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// AllSlots returns the full ordered universe.
func AllSlots() []Slot {
	slots := make([]Slot, 0, SlotCount)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, Slot(h))
	}
	return slots
}
