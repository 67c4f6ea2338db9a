//go:build unit

package uow

import (
	"testing"
	"time"

	"vehicle-parking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryableCode(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  string
		wantRetry bool
	}{
		{name: "plain error", err: assert.AnError},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, wantCode: "40001", wantRetry: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, wantCode: "40P01", wantRetry: true},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, wantCode: "55P03", wantRetry: true},
		{
			name:      "active reservation race",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "reservations_one_active_per_spot"},
			wantCode:  "23505",
			wantRetry: true,
		},
		{
			name:     "duplicate lot code",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "parking_lots_code_key"},
			wantCode: "23505",
		},
		{
			name:      "wrapped by repository",
			err:       infra.WrapRepoErr("failed to create reservation", &pgconn.PgError{Code: "23505", ConstraintName: "reservations_one_active_per_user"}),
			wantCode:  "23505",
			wantRetry: true,
		},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantCode: "23514"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, retry := RetryableCode(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantRetry, retry)
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond

	for attempt := 0; attempt < 4; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := CalculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.LessOrEqual(t, got, floor+floor/5)
	}
	assert.Zero(t, CalculateBackoff(0, 0))
}
