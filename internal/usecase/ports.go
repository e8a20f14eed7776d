package usecase

import (
	"context"
	"errors"

	"freebusy/internal/domain/calendar"
	"freebusy/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrCalendarNotFound    = errors.New("calendar not found")
	ErrSnapshotUnavailable = errors.New("calendar state unavailable")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CalendarRepository interface {
	Create(ctx context.Context, cal *calendar.Calendar) error
	FindByID(ctx context.Context, id uuid.UUID) (*calendar.Calendar, error)
}

type ScheduleRepository interface {
	LoadSnapshot(ctx context.Context, calendarID uuid.UUID) (schedule.Snapshot, error)
	ReplaceBlockedDays(ctx context.Context, calendarID uuid.UUID, entries []schedule.DayBlock) error
}
