//go:build e2e

package availability_test

import (
	"net/http"
	"testing"
	"time"

	"freebusy/internal/domain/schedule"
	reqdto "freebusy/internal/handler/dto/request"
	resdto "freebusy/internal/handler/dto/response"
	"freebusy/internal/pkg/cookie"
	"freebusy/tests/common/authtest"
	"freebusy/tests/common/builder"
	"freebusy/tests/common/dbtest"
	"freebusy/tests/common/httptest"
	"freebusy/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type availabilitySuite struct {
	e2e.SharedSuite
}

func TestAvailabilitySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(availabilitySuite))
}

func (s *availabilitySuite) sessionCookies(token string) []*http.Cookie {
	return []*http.Cookie{{Name: cookie.SessionCookieName, Value: token}}
}

func (s *availabilitySuite) queryURL(calendarID uuid.UUID) string {
	return "/api/calendars/" + calendarID.String() + "/availability/query"
}

func (s *availabilitySuite) blockedURL(calendarID uuid.UUID) string {
	return "/api/calendars/" + calendarID.String() + "/blocked"
}

func (s *availabilitySuite) TestFullFlow() {
	s.Run("create, block, then query around the blocks", func() {
		calendarID, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Team Calendar")
		cookies := s.sessionCookies(token)

		// Monday fully blocked, Tuesday morning blocked
		replaceBody := reqdto.ReplaceBlockedDaysRequest{
			Days: []reqdto.BlockedDayRequest{
				{Date: "2026-01-05", AllDay: true},
				{Date: "2026-01-06", Slots: []string{"06:00", "07:00", "08:00", "09:00", "10:00", "11:00"}},
			},
		}
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut,
			s.blockedURL(calendarID), replaceBody, cookies, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		queryBody := builder.NewQueryBuilder().
			WithRange("2026-01-05", "2026-01-06").
			WithTimePreference("morning").
			WithCount(3).
			BuildDTO()
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			s.queryURL(calendarID), queryBody, cookies, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Empty(response.Matches, "both mornings are fully blocked")

		queryBody = builder.NewQueryBuilder().
			WithRange("2026-01-05", "2026-01-06").
			WithCount(3).
			BuildDTO()
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			s.queryURL(calendarID), queryBody, cookies, "")

		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &response)
		s.Require().Len(response.Matches, 3)
		for i, m := range response.Matches {
			s.Equal("2026-01-06", m.Date, "match %d must land on the partially open day", i)
		}
		s.Equal("12:00", response.Matches[0].Slot)
		s.Equal("13:00", response.Matches[1].Slot)
		s.Equal("14:00", response.Matches[2].Slot)
	})

	s.Run("blocked state replace is a full overwrite", func() {
		calendarID, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Overwrite Calendar")
		cookies := s.sessionCookies(token)

		dbtest.BlockWholeDay(s.T(), s.DB, calendarID, schedule.NewDay(2026, time.March, 2))

		replaceBody := reqdto.ReplaceBlockedDaysRequest{
			Days: []reqdto.BlockedDayRequest{
				{Date: "2026-03-09", Slots: []string{"18:00"}},
			},
		}
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut,
			s.blockedURL(calendarID), replaceBody, cookies, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			s.blockedURL(calendarID), nil, cookies, "")

		var blocked resdto.BlockedDaysResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &blocked)
		s.Require().Len(blocked.Days, 1, "the earlier whole-day block must be gone")
		s.Equal("2026-03-09", blocked.Days[0].Date)
		s.Equal([]string{"18:00"}, blocked.Days[0].Slots)
	})

	s.Run("whole-day blocks round-trip without slot hours", func() {
		calendarID, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Whole Day Calendar")
		cookies := s.sessionCookies(token)

		dbtest.BlockWholeDay(s.T(), s.DB, calendarID, schedule.NewDay(2026, time.April, 6))

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			s.blockedURL(calendarID), nil, cookies, "")

		var blocked resdto.BlockedDaysResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &blocked)
		s.Require().Len(blocked.Days, 1)
		s.True(blocked.Days[0].AllDay)
		s.Empty(blocked.Days[0].Slots)

		// the PUT path stores all-day entries the same way
		replaceBody := reqdto.ReplaceBlockedDaysRequest{
			Days: []reqdto.BlockedDayRequest{{Date: "2026-04-07", AllDay: true}},
		}
		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut,
			s.blockedURL(calendarID), replaceBody, cookies, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			s.blockedURL(calendarID), nil, cookies, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &blocked)
		s.Require().Len(blocked.Days, 1)
		s.Equal("2026-04-07", blocked.Days[0].Date)
		s.True(blocked.Days[0].AllDay)
	})

	s.Run("query validation failures map to 400", func() {
		calendarID, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Validation Calendar")
		cookies := s.sessionCookies(token)

		cases := []struct {
			name string
			body reqdto.AvailabilityQueryRequest
		}{
			{
				name: "reversed range",
				body: builder.NewQueryBuilder().WithRange("2026-01-09", "2026-01-05").BuildDTO(),
			},
			{
				name: "zero count",
				body: builder.NewQueryBuilder().WithCount(0).BuildDTO(),
			},
			{
				name: "unsupported intent",
				body: builder.NewQueryBuilder().WithIntent("check_date").BuildDTO(),
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
					s.queryURL(calendarID), tc.body, cookies, "")
				s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
			})
		}
	})

	s.Run("sessions do not cross calendars", func() {
		calendarID, _ := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Mine")
		otherID, otherToken := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "Theirs")
		s.NotEqual(calendarID, otherID)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			s.queryURL(calendarID), builder.NewQueryBuilder().BuildDTO(),
			s.sessionCookies(otherToken), "")
		s.Equal(http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("unauthenticated queries are rejected", func() {
		calendarID := dbtest.CreateTestCalendar(s.T(), s.DB, "Locked Calendar")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			s.queryURL(calendarID), builder.NewQueryBuilder().BuildDTO(), "")
		s.Equal(http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("expired sessions are rejected", func() {
		calendarID := dbtest.CreateTestCalendar(s.T(), s.DB, "Expired Calendar")
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), calendarID)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			s.queryURL(calendarID), builder.NewQueryBuilder().BuildDTO(),
			s.sessionCookies(expired), "")
		s.Equal(http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
