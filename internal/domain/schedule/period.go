package schedule

// Period is a named grouping of slots. Morning, afternoon and evening
// partition the universe; PeriodAny is the whole of it.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
	PeriodAny       Period = "any"
)

var periodSlots = map[Period][2]int{
	PeriodMorning:   {6, 11},
	PeriodAfternoon: {12, 17},
	PeriodEvening:   {18, 21},
	PeriodAny:       {FirstSlotHour, LastSlotHour},
}

func (p Period) String() string {
	return string(p)
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodAny:
		return true
	default:
		return false
	}
}

// Slots returns the ordered slot subset for the period. The returned slice
// is a fresh copy on every call.
func (p Period) Slots() []Slot {
	bounds, ok := periodSlots[p]
	if !ok {
		return nil
	}
	slots := make([]Slot, 0, bounds[1]-bounds[0]+1)
	for h := bounds[0]; h <= bounds[1]; h++ {
		slots = append(slots, Slot(h))
	}
	return slots
}
