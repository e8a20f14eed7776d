//go:build unit || e2e

package builder

import (
	"freebusy/internal/domain/schedule"
	reqdto "freebusy/internal/handler/dto/request"
)

// SnapshotBuilder assembles blocked-day state for tests, either as the
// domain snapshot or as the wire form the replace endpoint accepts.
type SnapshotBuilder struct {
	blocked map[schedule.Day]schedule.BlockedDay
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{blocked: make(map[schedule.Day]schedule.BlockedDay)}
}

func (b *SnapshotBuilder) WithWholeDayBlock(day schedule.Day) *SnapshotBuilder {
	b.blocked[day] = schedule.BlockWholeDay()
	return b
}

func (b *SnapshotBuilder) WithSlotBlock(day schedule.Day, slots ...schedule.Slot) *SnapshotBuilder {
	b.blocked[day] = schedule.BlockSlots(slots...)
	return b
}

func (b *SnapshotBuilder) Build() schedule.Snapshot {
	return schedule.NewSnapshot(b.blocked)
}

func (b *SnapshotBuilder) BuildDayBlocks() []schedule.DayBlock {
	return b.Build().Entries()
}

func (b *SnapshotBuilder) BuildReplaceDTO() reqdto.ReplaceBlockedDaysRequest {
	entries := b.BuildDayBlocks()
	days := make([]reqdto.BlockedDayRequest, 0, len(entries))
	for _, e := range entries {
		d := reqdto.BlockedDayRequest{Date: e.Day.String(), AllDay: e.Blocked.AllDay()}
		for _, s := range e.Blocked.Slots() {
			d.Slots = append(d.Slots, s.String())
		}
		days = append(days, d)
	}
	return reqdto.ReplaceBlockedDaysRequest{Days: days}
}
