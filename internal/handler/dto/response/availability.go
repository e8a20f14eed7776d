package response

import (
	"freebusy/internal/domain/schedule"
)

type SlotMatchResponse struct {
	Date          string `json:"date"`
	Slot          string `json:"slot"`
	Period        string `json:"period"`
	Display       string `json:"display"`
	BusinessHours bool   `json:"businessHours"`
}

type QueryEchoResponse struct {
	Intent         string `json:"intent"`
	Start          string `json:"start"`
	End            string `json:"end"`
	TimePreference string `json:"timePreference"`
	Count          int    `json:"count"`
}

type AvailabilityResponse struct {
	Intent  string              `json:"intent"`
	Query   QueryEchoResponse   `json:"query"`
	Matches []SlotMatchResponse `json:"matches"`
}

func FromResult(result *schedule.Result) *AvailabilityResponse {
	matches := make([]SlotMatchResponse, len(result.Matches))
	for i, m := range result.Matches {
		matches[i] = SlotMatchResponse{
			Date:          m.Day.String(),
			Slot:          m.Slot.String(),
			Period:        m.Period.String(),
			Display:       m.Slot.Format(),
			BusinessHours: m.Slot.IsBusinessHours(),
		}
	}

	return &AvailabilityResponse{
		Intent: result.Intent.String(),
		Query: QueryEchoResponse{
			Intent:         result.Query.Intent.String(),
			Start:          result.Query.Range.Start.String(),
			End:            result.Query.Range.End.String(),
			TimePreference: result.Query.Period.String(),
			Count:          result.Query.Count,
		},
		Matches: matches,
	}
}
