//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"freebusy/internal/handler/dto/request"
	"freebusy/internal/pkg/cookie"
	"freebusy/tests/common/dbtest"
	"freebusy/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginCalendar(t *testing.T, router *gin.Engine, calendarID uuid.UUID, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/calendars/"+calendarID.String()+"/auth",
		request.LoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session token not found in cookies")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, name string) (uuid.UUID, string) {
	t.Helper()
	calendarID := dbtest.CreateTestCalendar(t, db, name)
	return calendarID, LoginCalendar(t, router, calendarID, dbtest.TestPassword)
}

func LogoutCalendar(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
