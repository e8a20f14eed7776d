//go:build unit

package calendar_test

import (
	"strings"
	"testing"
	"time"

	"freebusy/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendar(t *testing.T) {
	now := time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		cal, err := calendar.NewCalendar("  Team availability  ", "hash", now)
		require.NoError(t, err)
		require.NotNil(t, cal)

		assert.NotEqual(t, uuid.Nil, cal.ID())
		assert.Equal(t, "Team availability", cal.Name())
		assert.Equal(t, "hash", cal.PasswordHash())
		assert.Equal(t, now, cal.CreatedAt())
		assert.Equal(t, now, cal.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name         string
			calName      string
			passwordHash string
			errIs        error
		}{
			{"empty name", "", "hash", calendar.ErrEmptyName},
			{"whitespace name", "   ", "hash", calendar.ErrEmptyName},
			{"name too long", strings.Repeat("a", calendar.MaxNameLength+1), "hash", calendar.ErrNameTooLong},
			{"missing hash", "ok", "", calendar.ErrMissingPassword},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cal, err := calendar.NewCalendar(tc.calName, tc.passwordHash, now)
				require.Nil(t, cal)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		c1, err1 := calendar.NewCalendar("a", "h", now)
		c2, err2 := calendar.NewCalendar("a", "h", now)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, c1.ID(), c2.ID())
	})
}
