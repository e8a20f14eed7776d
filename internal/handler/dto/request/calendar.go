package request

import (
	"errors"

	"freebusy/internal/domain/schedule"
)

var (
	ErrUnknownSlot             = errors.New("unknown slot")
	ErrBlockedDayBlocksNothing = errors.New("blocked day entry blocks nothing")
	ErrDuplicateBlockedDay     = errors.New("duplicate blocked day entry")
)

type CreateCalendarRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type BlockedDayRequest struct {
	Date   string   `json:"date" binding:"required"`
	AllDay bool     `json:"all_day"`
	Slots  []string `json:"slots"`
}

// ReplaceBlockedDaysRequest carries the calendar's full blocked state as an
// ordered sequence of per-day records; the keyed in-memory form is rebuilt
// here.
type ReplaceBlockedDaysRequest struct {
	Days []BlockedDayRequest `json:"days" binding:"required"`
}

func (r ReplaceBlockedDaysRequest) ToDomain() ([]schedule.DayBlock, error) {
	seen := make(map[schedule.Day]struct{}, len(r.Days))
	entries := make([]schedule.DayBlock, 0, len(r.Days))

	for _, d := range r.Days {
		day, err := schedule.ParseDay(d.Date)
		if err != nil {
			return nil, ErrMalformedDate
		}
		if _, dup := seen[day]; dup {
			return nil, ErrDuplicateBlockedDay
		}
		seen[day] = struct{}{}

		var blocked schedule.BlockedDay
		switch {
		case d.AllDay:
			blocked = schedule.BlockWholeDay()
		case len(d.Slots) > 0:
			slots := make([]schedule.Slot, 0, len(d.Slots))
			for _, raw := range d.Slots {
				s, err := schedule.ParseSlot(raw)
				if err != nil {
					return nil, ErrUnknownSlot
				}
				slots = append(slots, s)
			}
			blocked = schedule.BlockSlots(slots...)
		default:
			return nil, ErrBlockedDayBlocksNothing
		}

		entries = append(entries, schedule.DayBlock{Day: day, Blocked: blocked})
	}

	return entries, nil
}
