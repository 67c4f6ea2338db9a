//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestGenerateAndValidate(t *testing.T) {
	issuedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(issuedAt)
	svc := jwt.NewService(secret, time.Hour, clk)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID, "driver01", user.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "driver01", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateToken_Rejects(t *testing.T) {
	issuedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		svc := jwt.NewService(secret, time.Hour, clk)
		token, _, err := svc.GenerateToken(userID, "driver01", user.RoleUser)
		require.NoError(t, err)

		clk.Add(time.Hour + time.Second)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		clk := clock.NewMockClock(issuedAt)
		token, _, err := jwt.NewService("another-secret", time.Hour, clk).GenerateToken(userID, "driver01", user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour, clk).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		svc := jwt.NewService(secret, time.Hour, clock.NewMockClock(issuedAt))
		_, err := svc.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
