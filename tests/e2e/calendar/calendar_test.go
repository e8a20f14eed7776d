//go:build e2e

package calendar_test

import (
	"net/http"
	"testing"

	reqdto "freebusy/internal/handler/dto/request"
	resdto "freebusy/internal/handler/dto/response"
	"freebusy/internal/pkg/cookie"
	"freebusy/tests/common/builder"
	"freebusy/tests/common/httptest"
	"freebusy/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type calendarSuite struct {
	e2e.SharedSuite
}

func TestCalendarSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(calendarSuite))
}

func (s *calendarSuite) TestCalendarLifecycle() {
	s.Run("create then log in with the chosen password", func() {
		createBody := builder.NewCalendarBuilder().WithName("Interview Loop").BuildCreateDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/calendars", createBody, "")

		var created resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("Interview Loop", created.Name)
		s.NotEqual(uuid.Nil, created.ID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/calendars/"+created.ID.String()+"/auth",
			reqdto.LoginRequest{Password: createBody.Password}, "")

		var login resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)
		s.Equal(created.ID.String(), login.CalendarID)
		s.NotNil(httptest.ExtractCookie(w, cookie.SessionCookieName))
	})

	s.Run("wrong password is rejected", func() {
		createBody := builder.NewCalendarBuilder().WithName("Guarded").BuildCreateDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/calendars", createBody, "")
		var created resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/calendars/"+created.ID.String()+"/auth",
			reqdto.LoginRequest{Password: "not-the-password"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("login against an unknown calendar is 404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/calendars/"+uuid.NewString()+"/auth",
			reqdto.LoginRequest{Password: "whatever-password"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("blank name is rejected by the domain", func() {
		body := builder.NewCalendarBuilder().WithName("   ").BuildCreateDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/calendars", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
	})
}
