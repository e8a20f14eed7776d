package calendar

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxNameLength = 120

var (
	ErrEmptyName       = errors.New("calendar name is empty")
	ErrNameTooLong     = errors.New("calendar name too long")
	ErrMissingPassword = errors.New("calendar password hash is empty")
)

// Calendar is the owning aggregate for one availability calendar. Access is
// password-scoped rather than user-scoped: anyone holding the password may
// read and edit the calendar's blocked days.
type Calendar struct {
	id           uuid.UUID
	name         string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCalendar(name, passwordHash string, now time.Time) (*Calendar, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if passwordHash == "" {
		return nil, ErrMissingPassword
	}

	return &Calendar{
		id:           uuid.New(),
		name:         name,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(id uuid.UUID, name, passwordHash string, createdAt, updatedAt time.Time) *Calendar {
	return &Calendar{
		id:           id,
		name:         name,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Calendar) ID() uuid.UUID        { return c.id }
func (c *Calendar) Name() string         { return c.name }
func (c *Calendar) PasswordHash() string { return c.passwordHash }
func (c *Calendar) CreatedAt() time.Time { return c.createdAt }
func (c *Calendar) UpdatedAt() time.Time { return c.updatedAt }
