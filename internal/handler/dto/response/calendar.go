package response

import (
	"time"

	"freebusy/internal/domain/calendar"
	"freebusy/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CalendarResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromCalendar maps the entity's accessor methods onto the response fields.
// The password hash has no counterpart here and never leaves the server.
func FromCalendar(cal *calendar.Calendar) (*CalendarResponse, error) {
	var resp CalendarResponse
	if err := copier.Copy(&resp, cal); err != nil {
		return nil, err
	}
	return &resp, nil
}

type BlockedDayResponse struct {
	Date   string   `json:"date"`
	AllDay bool     `json:"allDay"`
	Slots  []string `json:"slots,omitempty"`
}

type BlockedDaysResponse struct {
	Days []BlockedDayResponse `json:"days"`
}

func FromDayBlocks(entries []schedule.DayBlock) *BlockedDaysResponse {
	days := make([]BlockedDayResponse, len(entries))
	for i, entry := range entries {
		day := BlockedDayResponse{
			Date:   entry.Day.String(),
			AllDay: entry.Blocked.AllDay(),
		}
		for _, s := range entry.Blocked.Slots() {
			day.Slots = append(day.Slots, s.String())
		}
		days[i] = day
	}
	return &BlockedDaysResponse{Days: days}
}
