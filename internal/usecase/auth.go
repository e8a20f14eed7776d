package usecase

import (
	"context"
	"time"

	"freebusy/internal/infra"
	"freebusy/internal/pkg/clock"
	"freebusy/internal/pkg/errs"
	"freebusy/internal/pkg/jwt"
	"freebusy/internal/pkg/password"

	"github.com/google/uuid"
)

type AuthUseCase interface {
	// Login exchanges a calendar password for a session token and its
	// lifetime.
	Login(ctx context.Context, calendarID uuid.UUID, plainPassword string) (string, time.Duration, error)
}

type authUseCaseImpl struct {
	calendarRepo CalendarRepository
	jwtService   *jwt.Service
	clock        clock.Clock
}

func NewAuthUseCase(calendarRepo CalendarRepository, jwtService *jwt.Service, clock clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		calendarRepo: calendarRepo,
		jwtService:   jwtService,
		clock:        clock,
	}
}

func (u *authUseCaseImpl) Login(ctx context.Context, calendarID uuid.UUID, plainPassword string) (string, time.Duration, error) {
	cal, err := u.calendarRepo.FindByID(ctx, calendarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", 0, ErrCalendarNotFound
		}
		return "", 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(cal.PasswordHash(), plainPassword); err != nil {
		return "", 0, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(cal.ID(), u.clock.Now())
	if err != nil {
		return "", 0, errs.Wrap(err, "failed to sign session token")
	}

	return token, u.jwtService.TokenDuration(), nil
}
