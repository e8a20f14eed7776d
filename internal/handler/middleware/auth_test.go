//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"freebusy/internal/handler/middleware"
	"freebusy/internal/pkg/cookie"
	usecasemock "freebusy/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	am := middleware.NewAuthMiddleware(s.mockValidator)
	s.router = gin.New()
	s.router.GET("/protected", am.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetCalendarID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"calendar_id": id.String()})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) perform(mutate func(*http.Request)) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodGet, "/protected", nil)
	if mutate != nil {
		mutate(req)
	}
	w := nethttptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	calendarID := uuid.New()

	s.Run("accepts the session cookie", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(calendarID, nil)

		w := s.perform(func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "cookie-token"})
		})
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), calendarID.String())
	})

	s.Run("accepts a bearer token when no cookie is present", func() {
		s.mockValidator.EXPECT().ValidateToken("bearer-token").Return(calendarID, nil)

		w := s.perform(func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer bearer-token")
		})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("cookie wins over the bearer header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(calendarID, nil)

		w := s.perform(func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "cookie-token"})
			req.Header.Set("Authorization", "Bearer bearer-token")
		})
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("rejects requests without a token", func() {
		w := s.perform(nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects invalid tokens", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").Return(uuid.Nil, errors.New("expired"))

		w := s.perform(func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer bad-token")
		})
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
