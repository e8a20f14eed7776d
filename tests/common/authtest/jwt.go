//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"freebusy/internal/pkg/config"
	"freebusy/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, calendarID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(calendarID, time.Now())
	require.NoError(t, err)
	return token
}

// CreateExpiredToken backdates issuance so the token is already past its
// lifetime, no sleeping required.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, calendarID uuid.UUID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(calendarID, time.Now().Add(-2*duration))
	require.NoError(t, err)
	return token
}
