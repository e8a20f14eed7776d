package repository

import (
	"context"

	"freebusy/internal/domain/calendar"
	"freebusy/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CalendarRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

func (r *CalendarRepository) Create(ctx context.Context, cal *calendar.Calendar) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO calendars (id, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cal.ID(), cal.Name(), cal.PasswordHash(), cal.CreatedAt(), cal.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create calendar", err)
	}
	return nil
}

func (r *CalendarRepository) FindByID(ctx context.Context, id uuid.UUID) (*calendar.Calendar, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, password_hash, created_at, updated_at
		 FROM calendars WHERE id = $1`,
		id,
	)

	var rec calendarRow
	if err := row.Scan(&rec.ID, &rec.Name, &rec.PasswordHash, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to find calendar by ID", err)
	}

	return calendar.Reconstruct(rec.ID, rec.Name, rec.PasswordHash, rec.CreatedAt, rec.UpdatedAt), nil
}
