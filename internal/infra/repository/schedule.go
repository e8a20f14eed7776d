package repository

import (
	"context"
	"time"

	"freebusy/internal/domain/schedule"
	"freebusy/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type calendarRow struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScheduleRepository persists per-calendar blocked days: one row per day,
// either whole-day or carrying the blocked slot hours.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// LoadSnapshot reads the calendar's whole blocked state in one query, so
// the engine sees a single coherent view.
func (r *ScheduleRepository) LoadSnapshot(ctx context.Context, calendarID uuid.UUID) (schedule.Snapshot, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT day, all_day, slots FROM blocked_days WHERE calendar_id = $1`,
		calendarID,
	)
	if err != nil {
		return schedule.Snapshot{}, infra.WrapRepoErr("failed to load blocked days", err)
	}
	defer rows.Close()

	blocked := make(map[schedule.Day]schedule.BlockedDay)
	for rows.Next() {
		var (
			day    time.Time
			allDay bool
			hours  []int32
		)
		if err := rows.Scan(&day, &allDay, &hours); err != nil {
			return schedule.Snapshot{}, infra.WrapRepoErr("failed to scan blocked day", err)
		}

		b, err := toBlockedDay(allDay, hours)
		if err != nil {
			return schedule.Snapshot{}, infra.WrapRepoErr("corrupt blocked day row", err)
		}
		blocked[schedule.DayOf(day)] = b
	}
	if err := rows.Err(); err != nil {
		return schedule.Snapshot{}, infra.WrapRepoErr("failed to read blocked days", err)
	}

	return schedule.NewSnapshot(blocked), nil
}

// ReplaceBlockedDays swaps the calendar's entire blocked set in one
// transaction, matching the wire model of a full state upload.
func (r *ScheduleRepository) ReplaceBlockedDays(ctx context.Context, calendarID uuid.UUID, entries []schedule.DayBlock) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM blocked_days WHERE calendar_id = $1`, calendarID,
	); err != nil {
		return infra.WrapRepoErr("failed to clear blocked days", err)
	}

	for _, entry := range entries {
		// never nil: the column is NOT NULL and a nil slice encodes as SQL NULL
		hours := make([]int32, 0, len(entry.Blocked.Slots()))
		for _, s := range entry.Blocked.Slots() {
			hours = append(hours, int32(s.Hour()))
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO blocked_days (calendar_id, day, all_day, slots)
			 VALUES ($1, $2, $3, $4)`,
			calendarID, entry.Day.Time(), entry.Blocked.AllDay(), hours,
		); err != nil {
			return infra.WrapRepoErr("failed to insert blocked day", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit blocked days", err)
	}
	return nil
}

func toBlockedDay(allDay bool, hours []int32) (schedule.BlockedDay, error) {
	if allDay {
		return schedule.BlockWholeDay(), nil
	}
	slots := make([]schedule.Slot, 0, len(hours))
	for _, h := range hours {
		s, err := schedule.NewSlot(int(h))
		if err != nil {
			return schedule.BlockedDay{}, err
		}
		slots = append(slots, s)
	}
	return schedule.BlockSlots(slots...), nil
}
