package schedule

import (
	"errors"
	"sort"
	"time"
)

const dayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid calendar day")

// Day is a calendar date with no time-of-day component. All constructors
// normalize to midnight UTC, so Day values are safely comparable with ==
// and usable as map keys.
type Day struct {
	t time.Time
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates an instant to its calendar date.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return NewDay(y, m, d)
}

// ParseDay accepts the wire form "2006-01-02".
func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return DayOf(t), nil
}

func (d Day) String() string {
	return d.t.Format(dayLayout)
}

func (d Day) Time() time.Time {
	return d.t
}

func (d Day) IsZero() bool {
	return d.t.IsZero()
}

func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

func (d Day) After(other Day) bool {
	return d.t.After(other.t)
}

func (d Day) Next() Day {
	return Day{t: d.t.AddDate(0, 0, 1)}
}

// BlockedDay records unavailability for one day: either the whole day, or
// an explicit set of blocked slots (anything not listed stays open).
type BlockedDay struct {
	allDay bool
	slots  map[Slot]struct{}
}

func BlockWholeDay() BlockedDay {
	return BlockedDay{allDay: true}
}

func BlockSlots(slots ...Slot) BlockedDay {
	set := make(map[Slot]struct{}, len(slots))
	for _, s := range slots {
		set[s] = struct{}{}
	}
	return BlockedDay{slots: set}
}

func (b BlockedDay) AllDay() bool {
	return b.allDay
}

func (b BlockedDay) Blocks(slot Slot) bool {
	if b.allDay {
		return true
	}
	_, blocked := b.slots[slot]
	return blocked
}

// Slots returns the explicitly blocked slots in ascending order. Empty for
// whole-day blocks.
func (b BlockedDay) Slots() []Slot {
	if b.allDay || len(b.slots) == 0 {
		return nil
	}
	slots := make([]Slot, 0, len(b.slots))
	for s := range b.slots {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// Snapshot is an immutable point-in-time view of a calendar's blocked
// state. A day with no entry is fully open.
type Snapshot struct {
	days map[Day]BlockedDay
}

// NewSnapshot copies the given mapping; later mutation of the argument
// does not affect the snapshot.
func NewSnapshot(blocked map[Day]BlockedDay) Snapshot {
	days := make(map[Day]BlockedDay, len(blocked))
	for d, b := range blocked {
		days[d] = b
	}
	return Snapshot{days: days}
}

func EmptySnapshot() Snapshot {
	return Snapshot{days: map[Day]BlockedDay{}}
}

func (s Snapshot) IsOpen(day Day, slot Slot) bool {
	b, ok := s.days[day]
	if !ok {
		return true
	}
	return !b.Blocks(slot)
}

func (s Snapshot) Len() int {
	return len(s.days)
}

// DayBlock is one (day, blocked-state) pair in a snapshot's ordered
// serialization.
type DayBlock struct {
	Day     Day
	Blocked BlockedDay
}

// Entries returns the snapshot's blocked days ordered by day ascending.
// This is the canonical wire shape; the keyed map never leaves the domain.
func (s Snapshot) Entries() []DayBlock {
	entries := make([]DayBlock, 0, len(s.days))
	for d, b := range s.days {
		entries = append(entries, DayBlock{Day: d, Blocked: b})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Day.Before(entries[j].Day) })
	return entries
}
