//go:build unit

package spot_test

import (
	"testing"
	"time"

	"vehicle-parking/internal/domain/spot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func TestLabel(t *testing.T) {
	tests := []struct {
		position int
		want     string
	}{
		{0, ""},
		{1, "A1"},
		{10, "A10"},
		{11, "B1"},
		{12, "B2"},
		{260, "Z10"},
		{261, "AA1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, spot.Label(tt.position), "position %d", tt.position)
	}
	assert.Equal(t, "A1-B3", spot.DisplayLabel("A1", "B3"))
}

func TestNewSpotsForLot(t *testing.T) {
	lotID := uuid.New()

	spots, err := spot.NewSpotsForLot(lotID, 12, now)
	require.NoError(t, err)
	require.Len(t, spots, 12)

	for i, s := range spots {
		assert.Equal(t, i+1, s.Position())
		assert.Equal(t, lotID, s.LotID())
		assert.True(t, s.IsAvailable())
	}
	assert.Equal(t, "1", spots[0].Number())
	assert.Equal(t, "B2", spots[11].Label())

	_, err = spot.NewSpot(lotID, 0, now)
	assert.ErrorIs(t, err, spot.ErrInvalidPosition)
}

func TestSpot_Transitions(t *testing.T) {
	s, err := spot.NewSpot(uuid.New(), 1, now)
	require.NoError(t, err)

	require.ErrorIs(t, s.Vacate(), spot.ErrSpotNotOccupied)
	require.NoError(t, s.EnsureDeletable())

	require.NoError(t, s.Occupy())
	assert.True(t, s.IsOccupied())
	require.ErrorIs(t, s.Occupy(), spot.ErrSpotOccupied)
	require.ErrorIs(t, s.EnsureDeletable(), spot.ErrSpotOccupied)

	require.NoError(t, s.Vacate())
	assert.Equal(t, spot.StatusAvailable, s.Status())
}
