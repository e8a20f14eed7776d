//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"freebusy/internal/infra"
	"freebusy/internal/pkg/clock"
	"freebusy/internal/pkg/jwt"
	"freebusy/internal/pkg/password"
	"freebusy/internal/usecase"
	"freebusy/tests/common/builder"
	usecasemock "freebusy/tests/mock/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockCalendarRepo *usecasemock.MockCalendarRepository
	jwtService       *jwt.Service
	clock            *clock.MockClock
	uc               usecase.AuthUseCase
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCalendarRepo = usecasemock.NewMockCalendarRepository(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	// issuance time must be recent or ValidateToken sees an expired token
	s.clock = clock.NewMockClock(time.Now())
	s.uc = usecase.NewAuthUseCase(s.mockCalendarRepo, s.jwtService, s.clock)
}

func (s *AuthUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	ctx := context.Background()

	hash, err := password.Hash("correct-horse")
	s.Require().NoError(err)
	cal := builder.NewCalendarBuilder().WithPasswordHash(hash).BuildDomain()
	calendarID := cal.ID()

	s.Run("success: token is scoped to the calendar", func() {
		s.mockCalendarRepo.EXPECT().FindByID(gomock.Any(), calendarID).Return(cal, nil)

		token, expiry, err := s.uc.Login(ctx, calendarID, "correct-horse")
		s.Require().NoError(err)
		s.Equal(time.Hour, expiry)

		claims, err := s.jwtService.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(calendarID, claims.CalendarID)
	})

	s.Run("error: wrong password", func() {
		s.mockCalendarRepo.EXPECT().FindByID(gomock.Any(), calendarID).Return(cal, nil)

		_, _, err := s.uc.Login(ctx, calendarID, "wrong-password")
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("error: calendar missing", func() {
		s.mockCalendarRepo.EXPECT().FindByID(gomock.Any(), calendarID).
			Return(nil, infra.WrapRepoErr("calendar not found", pgx.ErrNoRows))

		_, _, err := s.uc.Login(ctx, calendarID, "correct-horse")
		s.ErrorIs(err, usecase.ErrCalendarNotFound)
	})

	s.Run("error: lookup failure", func() {
		s.mockCalendarRepo.EXPECT().FindByID(gomock.Any(), calendarID).
			Return(nil, infra.WrapRepoErr("connection lost", context.DeadlineExceeded))

		_, _, err := s.uc.Login(ctx, calendarID, "correct-horse")
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}
