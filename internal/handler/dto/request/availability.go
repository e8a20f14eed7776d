package request

import (
	"errors"

	"freebusy/internal/domain/schedule"
)

var (
	ErrMalformedDate         = errors.New("malformed date")
	ErrUnknownTimePreference = errors.New("unknown time preference")
)

type DateRangeRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// AvailabilityQueryRequest is the wire form of an availability query. Dates
// travel as "YYYY-MM-DD"; the vocabulary is checked here, before the engine
// is invoked, while semantic validation (range order, count positivity,
// intent support) stays with the engine.
type AvailabilityQueryRequest struct {
	Intent         string           `json:"intent" binding:"required"`
	DateRange      DateRangeRequest `json:"date_range" binding:"required"`
	TimePreference *string          `json:"time_preference,omitempty"`
	Count          *int             `json:"count,omitempty"`
}

func (r AvailabilityQueryRequest) ToDomain() (schedule.Query, error) {
	start, err := schedule.ParseDay(r.DateRange.Start)
	if err != nil {
		return schedule.Query{}, ErrMalformedDate
	}
	end, err := schedule.ParseDay(r.DateRange.End)
	if err != nil {
		return schedule.Query{}, ErrMalformedDate
	}

	period := schedule.PeriodAny
	if r.TimePreference != nil {
		period = schedule.Period(*r.TimePreference)
		if !period.IsValid() {
			return schedule.Query{}, ErrUnknownTimePreference
		}
	}

	count := schedule.DefaultCount
	if r.Count != nil {
		count = *r.Count
	}

	return schedule.Query{
		Intent: schedule.Intent(r.Intent),
		Range:  schedule.DayRange{Start: start, End: end},
		Period: period,
		Count:  count,
	}, nil
}
