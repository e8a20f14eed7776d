package usecase

import (
	"context"

	"freebusy/internal/domain/schedule"
	"freebusy/internal/infra"
	"freebusy/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityUseCase interface {
	FindSlots(ctx context.Context, calendarID uuid.UUID, query schedule.Query) (*schedule.Result, error)
}

type availabilityUseCaseImpl struct {
	calendarRepo CalendarRepository
	scheduleRepo ScheduleRepository
}

func NewAvailabilityUseCase(calendarRepo CalendarRepository, scheduleRepo ScheduleRepository) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		calendarRepo: calendarRepo,
		scheduleRepo: scheduleRepo,
	}
}

// FindSlots loads one coherent snapshot of the calendar's blocked state and
// runs the query engine against it. Engine validation errors pass through
// unchanged; persistence failures are classified for the transport layer.
func (u *availabilityUseCaseImpl) FindSlots(ctx context.Context, calendarID uuid.UUID, query schedule.Query) (*schedule.Result, error) {
	if _, err := u.calendarRepo.FindByID(ctx, calendarID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCalendarNotFound
		}
		return nil, errs.Mark(err, ErrSnapshotUnavailable)
	}

	snapshot, err := u.scheduleRepo.LoadSnapshot(ctx, calendarID)
	if err != nil {
		return nil, errs.Mark(err, ErrSnapshotUnavailable)
	}

	return schedule.Execute(query, snapshot)
}
