package schedule

import "errors"

var (
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidCount      = errors.New("invalid count")
	ErrUnsupportedIntent = errors.New("unsupported intent")
)

// Intent names what a query asks for. Only IntentFindSlots is implemented;
// the vocabulary stays open for future intents such as "check_date".
type Intent string

const IntentFindSlots Intent = "find_slots"

func (i Intent) String() string {
	return string(i)
}

func (i Intent) IsValid() bool {
	return i == IntentFindSlots
}

// DefaultCount caps a query's result size when the caller does not ask for
// a specific number.
const DefaultCount = 10

// DayRange is an inclusive [Start, End] span of days.
type DayRange struct {
	Start Day
	End   Day
}

func (r DayRange) IsValid() bool {
	return !r.Start.After(r.End)
}

// Query is the structured availability request.
type Query struct {
	Intent Intent
	Range  DayRange
	Period Period
	Count  int
}

// Normalize applies the period default. Count is left alone: an absent
// count is defaulted at the transport boundary, and a non-positive one is
// a validation error, not a value to repair.
func (q Query) Normalize() Query {
	if q.Period == "" {
		q.Period = PeriodAny
	}
	return q
}

// Match is one open (day, slot) pair found by a query.
type Match struct {
	Day    Day
	Slot   Slot
	Period Period
}

// Result echoes the query's intent and normalized form alongside the
// ordered matches (day ascending, slot ascending within a day).
type Result struct {
	Intent  Intent
	Query   Query
	Matches []Match
}
