//go:build unit || e2e

package builder

import (
	"freebusy/internal/domain/schedule"
	reqdto "freebusy/internal/handler/dto/request"
)

type QueryBuilder struct {
	Intent         string
	Start          string
	End            string
	TimePreference *string
	Count          *int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		Intent: string(schedule.IntentFindSlots),
		Start:  "2026-01-05",
		End:    "2026-01-09",
	}
}

func (b *QueryBuilder) With(mutate func(*QueryBuilder)) *QueryBuilder {
	mutate(b)
	return b
}

func (b *QueryBuilder) BuildDTO() reqdto.AvailabilityQueryRequest {
	return reqdto.AvailabilityQueryRequest{
		Intent:         b.Intent,
		DateRange:      reqdto.DateRangeRequest{Start: b.Start, End: b.End},
		TimePreference: b.TimePreference,
		Count:          b.Count,
	}
}

func (b *QueryBuilder) BuildDomain() (schedule.Query, error) {
	return b.BuildDTO().ToDomain()
}

// Fluent builder methods
func (b *QueryBuilder) WithIntent(intent string) *QueryBuilder {
	b.Intent = intent
	return b
}

func (b *QueryBuilder) WithRange(start, end string) *QueryBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *QueryBuilder) WithTimePreference(pref string) *QueryBuilder {
	b.TimePreference = &pref
	return b
}

func (b *QueryBuilder) WithCount(count int) *QueryBuilder {
	b.Count = &count
	return b
}
