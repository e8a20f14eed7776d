package schedule

// Openness answers whether one (day, slot) pair is open. Snapshot is the
// canonical implementation; tests wrap it to observe access patterns.
type Openness interface {
	IsOpen(day Day, slot Slot) bool
}

// Execute runs one query against one calendar view. It is a pure function
// of its two inputs: no clock, no ambient state, no mutation of cal.
//
// Days are scanned ascending from Range.Start through Range.End, slots
// ascending within each day, and the scan stops as soon as Count matches
// are collected. Exhausting the range with fewer matches (or none) is a
// valid result, not an error.
func Execute(q Query, cal Openness) (*Result, error) {
	q = q.Normalize()

	if !q.Intent.IsValid() {
		return nil, ErrUnsupportedIntent
	}
	if q.Count <= 0 {
		return nil, ErrInvalidCount
	}
	if !q.Range.IsValid() {
		return nil, ErrInvalidDateRange
	}

	slots := q.Period.Slots()
	matches := make([]Match, 0, q.Count)

	for day := q.Range.Start; ; day = day.Next() {
		for _, slot := range slots {
			if !cal.IsOpen(day, slot) {
				continue
			}
			matches = append(matches, Match{Day: day, Slot: slot, Period: slot.Period()})
			if len(matches) == q.Count {
				return &Result{Intent: q.Intent, Query: q, Matches: matches}, nil
			}
		}
		if day == q.Range.End {
			break
		}
	}

	return &Result{Intent: q.Intent, Query: q, Matches: matches}, nil
}
