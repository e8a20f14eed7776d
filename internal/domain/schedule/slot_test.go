//go:build unit

package schedule_test

import (
	"testing"

	"freebusy/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotUniverse(t *testing.T) {
	all := schedule.AllSlots()
	require.Len(t, all, schedule.SlotCount)
	assert.Equal(t, 6, all[0].Hour())
	assert.Equal(t, 21, all[len(all)-1].Hour())

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1], all[i])
	}
}

func TestPeriodPartition(t *testing.T) {
	// Every slot belongs to exactly one named period, and PeriodAny is the
	// three of them concatenated in ascending order.
	var union []schedule.Slot
	union = append(union, schedule.PeriodMorning.Slots()...)
	union = append(union, schedule.PeriodAfternoon.Slots()...)
	union = append(union, schedule.PeriodEvening.Slots()...)

	assert.Equal(t, schedule.PeriodAny.Slots(), union)
	assert.Equal(t, schedule.AllSlots(), schedule.PeriodAny.Slots())

	for _, s := range schedule.AllSlots() {
		owners := 0
		for _, p := range []schedule.Period{schedule.PeriodMorning, schedule.PeriodAfternoon, schedule.PeriodEvening} {
			for _, member := range p.Slots() {
				if member == s {
					owners++
					assert.Equal(t, p, s.Period())
				}
			}
		}
		assert.Equal(t, 1, owners, "slot %s must belong to exactly one period", s)
	}
}

func TestPeriodBounds(t *testing.T) {
	assert.Equal(t, schedule.Slot(6), schedule.PeriodMorning.Slots()[0])
	assert.Equal(t, schedule.Slot(11), schedule.PeriodMorning.Slots()[5])
	assert.Equal(t, schedule.Slot(12), schedule.PeriodAfternoon.Slots()[0])
	assert.Equal(t, schedule.Slot(17), schedule.PeriodAfternoon.Slots()[5])
	assert.Equal(t, schedule.Slot(18), schedule.PeriodEvening.Slots()[0])
	assert.Equal(t, schedule.Slot(21), schedule.PeriodEvening.Slots()[3])
}

func TestSlotNeighbors(t *testing.T) {
	first := schedule.Slot(6)
	last := schedule.Slot(21)

	_, ok := first.Predecessor()
	assert.False(t, ok)
	_, ok = last.Successor()
	assert.False(t, ok)

	next, ok := first.Successor()
	require.True(t, ok)
	assert.Equal(t, schedule.Slot(7), next)

	prev, ok := last.Predecessor()
	require.True(t, ok)
	assert.Equal(t, schedule.Slot(20), prev)
}

func TestSlotFormat(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{6, "6:00 AM"},
		{9, "9:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{14, "2:00 PM"},
		{21, "9:00 PM"},
	}
	for _, c := range cases {
		s, err := schedule.NewSlot(c.hour)
		require.NoError(t, err)
		assert.Equal(t, c.want, s.Format())
	}
}

func TestSlotBusinessHours(t *testing.T) {
	for _, s := range schedule.AllSlots() {
		want := s.Hour() >= 9 && s.Hour() < 17
		assert.Equal(t, want, s.IsBusinessHours(), "slot %s", s)
	}
}

func TestNewSlotValidation(t *testing.T) {
	for _, hour := range []int{5, 22, 0, -1, 24} {
		_, err := schedule.NewSlot(hour)
		assert.ErrorIs(t, err, schedule.ErrSlotOutOfRange, "hour %d", hour)
	}
}

func TestParseSlot(t *testing.T) {
	s, err := schedule.ParseSlot("09:00")
	require.NoError(t, err)
	assert.Equal(t, schedule.Slot(9), s)

	s, err = schedule.ParseSlot("21:00")
	require.NoError(t, err)
	assert.Equal(t, schedule.Slot(21), s)

	for _, bad := range []string{"", "9", "09:30", "25:00", "05:00", "abc"} {
		_, err := schedule.ParseSlot(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
