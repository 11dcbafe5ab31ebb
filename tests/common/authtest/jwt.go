//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"venue-booking/internal/domain/staff"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs staff tokens the way the external staff portal does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID uuid.UUID, role staff.Role) string {
	t.Helper()
	// past the validator's clock-skew leeway
	token, err := jwt.NewService(h.cfg.Secret, -time.Hour).GenerateToken(staffID, role)
	require.NoError(t, err)
	return token
}
