//go:build unit || e2e

package builder

import (
	"time"

	domcalendar "freebusy/internal/domain/calendar"
	reqdto "freebusy/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CalendarBuilder struct {
	ID           uuid.UUID
	Name         string
	Password     string
	PasswordHash string
	CreatedAt    time.Time
}

func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{
		ID:           uuid.New(),
		Name:         "Team Standup Calendar",
		Password:     "password123",
		PasswordHash: "$2a$10$hashedhashedhashedhashedhh",
		CreatedAt:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CalendarBuilder) With(mutate func(*CalendarBuilder)) *CalendarBuilder {
	mutate(b)
	return b
}

func (b *CalendarBuilder) BuildCreateDTO() reqdto.CreateCalendarRequest {
	return reqdto.CreateCalendarRequest{
		Name:     b.Name,
		Password: b.Password,
	}
}

func (b *CalendarBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Password: b.Password}
}

func (b *CalendarBuilder) BuildDomain() *domcalendar.Calendar {
	return domcalendar.Reconstruct(b.ID, b.Name, b.PasswordHash, b.CreatedAt, b.CreatedAt)
}

// Fluent builder methods
func (b *CalendarBuilder) WithID(id uuid.UUID) *CalendarBuilder {
	b.ID = id
	return b
}

func (b *CalendarBuilder) WithName(name string) *CalendarBuilder {
	b.Name = name
	return b
}

func (b *CalendarBuilder) WithPassword(password string) *CalendarBuilder {
	b.Password = password
	return b
}

func (b *CalendarBuilder) WithPasswordHash(hash string) *CalendarBuilder {
	b.PasswordHash = hash
	return b
}
