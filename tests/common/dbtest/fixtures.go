//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"freebusy/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind TestPasswordHash.
const TestPassword = "password123"

const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestCalendar(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	calendarID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO calendars (id, name, password_hash) VALUES ($1, $2, $3)",
		calendarID, name, TestPasswordHash)
	require.NoError(t, err)

	return calendarID
}

// BlockWholeDay inserts an all-day block for the calendar.
func BlockWholeDay(t *testing.T, db DBLike, calendarID uuid.UUID, day schedule.Day) {
	t.Helper()

	// slots omitted so the column default '{}' applies; the column is NOT NULL
	_, err := db.Exec(context.Background(),
		"INSERT INTO blocked_days (calendar_id, day, all_day) VALUES ($1, $2, true)",
		calendarID, day.Time())
	require.NoError(t, err)
}

// BlockSlots inserts an hourly block for the calendar.
func BlockSlots(t *testing.T, db DBLike, calendarID uuid.UUID, day schedule.Day, slots ...schedule.Slot) {
	t.Helper()

	hours := make([]int32, 0, len(slots))
	for _, s := range slots {
		hours = append(hours, int32(s))
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO blocked_days (calendar_id, day, all_day, slots) VALUES ($1, $2, false, $3)",
		calendarID, day.Time(), hours)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
