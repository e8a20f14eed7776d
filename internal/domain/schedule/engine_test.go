//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"freebusy/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingOpenness wraps a snapshot and counts predicate evaluations.
type countingOpenness struct {
	snap  schedule.Snapshot
	calls int
}

func (c *countingOpenness) IsOpen(day schedule.Day, slot schedule.Slot) bool {
	c.calls++
	return c.snap.IsOpen(day, slot)
}

func day(dd int) schedule.Day {
	return schedule.NewDay(2026, time.January, dd)
}

func findSlots(start, end schedule.Day, period schedule.Period, count int) schedule.Query {
	return schedule.Query{
		Intent: schedule.IntentFindSlots,
		Range:  schedule.DayRange{Start: start, End: end},
		Period: period,
		Count:  count,
	}
}

func TestExecuteOpenByDefault(t *testing.T) {
	// Three fully open days with period any and count 48 yield every slot
	// of every day in order, exactly 16 x 3 matches.
	q := findSlots(day(1), day(3), schedule.PeriodAny, 48)

	result, err := schedule.Execute(q, schedule.EmptySnapshot())
	require.NoError(t, err)
	require.Len(t, result.Matches, 48)

	i := 0
	for d := day(1); !d.After(day(3)); d = d.Next() {
		for _, s := range schedule.AllSlots() {
			assert.Equal(t, d, result.Matches[i].Day)
			assert.Equal(t, s, result.Matches[i].Slot)
			assert.Equal(t, s.Period(), result.Matches[i].Period)
			i++
		}
	}
}

func TestExecuteWholeDayBlock(t *testing.T) {
	snap := schedule.NewSnapshot(map[schedule.Day]schedule.BlockedDay{
		day(2): schedule.BlockWholeDay(),
	})
	q := findSlots(day(1), day(3), schedule.PeriodAny, 100)

	result, err := schedule.Execute(q, snap)
	require.NoError(t, err)
	require.Len(t, result.Matches, 32)

	for _, m := range result.Matches {
		assert.NotEqual(t, day(2), m.Day)
	}
}

func TestExecutePartialBlock(t *testing.T) {
	snap := schedule.NewSnapshot(map[schedule.Day]schedule.BlockedDay{
		day(1): schedule.BlockSlots(9, 10),
	})
	q := findSlots(day(1), day(1), schedule.PeriodMorning, 6)

	result, err := schedule.Execute(q, snap)
	require.NoError(t, err)

	got := make([]schedule.Slot, 0, len(result.Matches))
	for _, m := range result.Matches {
		got = append(got, m.Slot)
	}
	assert.Equal(t, []schedule.Slot{6, 7, 8, 11}, got)
}

func TestExecutePeriodPreference(t *testing.T) {
	q := findSlots(day(1), day(2), schedule.PeriodEvening, 100)

	result, err := schedule.Execute(q, schedule.EmptySnapshot())
	require.NoError(t, err)
	require.Len(t, result.Matches, 8)
	for _, m := range result.Matches {
		assert.Equal(t, schedule.PeriodEvening, m.Period)
		assert.GreaterOrEqual(t, m.Slot.Hour(), 18)
	}
}

func TestExecuteCountCap(t *testing.T) {
	q := findSlots(day(1), day(10), schedule.PeriodAny, 5)

	result, err := schedule.Execute(q, schedule.EmptySnapshot())
	require.NoError(t, err)
	assert.Len(t, result.Matches, 5)
}

func TestExecuteFewerMatchesThanRequested(t *testing.T) {
	snap := schedule.NewSnapshot(map[schedule.Day]schedule.BlockedDay{
		day(1): schedule.BlockWholeDay(),
	})
	q := findSlots(day(1), day(1), schedule.PeriodAny, 10)

	result, err := schedule.Execute(q, snap)
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
}

func TestExecuteDefaultsPeriod(t *testing.T) {
	q := schedule.Query{
		Intent: schedule.IntentFindSlots,
		Range:  schedule.DayRange{Start: day(1), End: day(1)},
		Count:  16,
	}

	result, err := schedule.Execute(q, schedule.EmptySnapshot())
	require.NoError(t, err)
	assert.Equal(t, schedule.PeriodAny, result.Query.Period)
	assert.Len(t, result.Matches, 16)
}

func TestExecuteValidation(t *testing.T) {
	cases := []struct {
		name  string
		query schedule.Query
		errIs error
	}{
		{
			name:  "start after end",
			query: findSlots(day(10), day(5), schedule.PeriodAny, 10),
			errIs: schedule.ErrInvalidDateRange,
		},
		{
			name:  "zero count",
			query: findSlots(day(1), day(3), schedule.PeriodAny, 0),
			errIs: schedule.ErrInvalidCount,
		},
		{
			name:  "negative count",
			query: findSlots(day(1), day(3), schedule.PeriodAny, -1),
			errIs: schedule.ErrInvalidCount,
		},
		{
			name: "unknown intent",
			query: schedule.Query{
				Intent: "check_date",
				Range:  schedule.DayRange{Start: day(1), End: day(3)},
				Count:  10,
			},
			errIs: schedule.ErrUnsupportedIntent,
		},
		{
			name: "empty intent",
			query: schedule.Query{
				Range: schedule.DayRange{Start: day(1), End: day(3)},
				Count: 10,
			},
			errIs: schedule.ErrUnsupportedIntent,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := schedule.Execute(tc.query, schedule.EmptySnapshot())
			require.Nil(t, result)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestExecuteInvalidRangeWinsOverSnapshot(t *testing.T) {
	snap := schedule.NewSnapshot(map[schedule.Day]schedule.BlockedDay{
		day(7): schedule.BlockWholeDay(),
	})
	_, err := schedule.Execute(findSlots(day(10), day(5), schedule.PeriodAny, 10), snap)
	assert.ErrorIs(t, err, schedule.ErrInvalidDateRange)
}

func TestExecuteDeterministic(t *testing.T) {
	snap := schedule.NewSnapshot(map[schedule.Day]schedule.BlockedDay{
		day(2): schedule.BlockSlots(9, 14, 20),
		day(4): schedule.BlockWholeDay(),
	})
	q := findSlots(day(1), day(6), schedule.PeriodAny, 30)

	first, err := schedule.Execute(q, snap)
	require.NoError(t, err)
	second, err := schedule.Execute(q, snap)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmpopts.EquateComparable(schedule.Day{})); diff != "" {
		t.Errorf("repeated execution differs (-first +second):\n%s", diff)
	}
}

func TestExecuteShortCircuits(t *testing.T) {
	// With count=1 over ten open days the scan must stop at the first
	// match: at most one day's worth of predicate evaluations.
	counter := &countingOpenness{snap: schedule.EmptySnapshot()}
	q := findSlots(day(1), day(10), schedule.PeriodAny, 1)

	result, err := schedule.Execute(q, counter)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.LessOrEqual(t, counter.calls, schedule.SlotCount)
}

func TestExecuteDoesNotMutateSnapshot(t *testing.T) {
	snap := schedule.NewSnapshot(map[schedule.Day]schedule.BlockedDay{
		day(3): schedule.BlockSlots(12),
	})
	before := snap.Entries()

	_, err := schedule.Execute(findSlots(day(1), day(5), schedule.PeriodAny, 40), snap)
	require.NoError(t, err)

	assert.Equal(t, before, snap.Entries())
}
