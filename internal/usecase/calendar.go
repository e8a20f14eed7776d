package usecase

import (
	"context"

	"freebusy/internal/domain/calendar"
	"freebusy/internal/domain/schedule"
	"freebusy/internal/infra"
	"freebusy/internal/pkg/clock"
	"freebusy/internal/pkg/errs"
	"freebusy/internal/pkg/password"

	"github.com/google/uuid"
)

type CalendarUseCase interface {
	CreateCalendar(ctx context.Context, name, plainPassword string) (*calendar.Calendar, error)
	GetBlockedDays(ctx context.Context, calendarID uuid.UUID) ([]schedule.DayBlock, error)
	ReplaceBlockedDays(ctx context.Context, calendarID uuid.UUID, entries []schedule.DayBlock) error
}

type calendarUseCaseImpl struct {
	calendarRepo CalendarRepository
	scheduleRepo ScheduleRepository
	clock        clock.Clock
}

func NewCalendarUseCase(calendarRepo CalendarRepository, scheduleRepo ScheduleRepository, clock clock.Clock) CalendarUseCase {
	return &calendarUseCaseImpl{
		calendarRepo: calendarRepo,
		scheduleRepo: scheduleRepo,
		clock:        clock,
	}
}

func (u *calendarUseCaseImpl) CreateCalendar(ctx context.Context, name, plainPassword string) (*calendar.Calendar, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	cal, err := calendar.NewCalendar(name, hash, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	if err := u.calendarRepo.Create(ctx, cal); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return cal, nil
}

func (u *calendarUseCaseImpl) GetBlockedDays(ctx context.Context, calendarID uuid.UUID) ([]schedule.DayBlock, error) {
	if _, err := u.calendarRepo.FindByID(ctx, calendarID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snapshot, err := u.scheduleRepo.LoadSnapshot(ctx, calendarID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return snapshot.Entries(), nil
}

func (u *calendarUseCaseImpl) ReplaceBlockedDays(ctx context.Context, calendarID uuid.UUID, entries []schedule.DayBlock) error {
	if _, err := u.calendarRepo.FindByID(ctx, calendarID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCalendarNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := u.scheduleRepo.ReplaceBlockedDays(ctx, calendarID, entries); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
