//go:build unit

package uow

import (
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "upsert total"), true},
		{"lock timeout stays a conflict", &pgconn.PgError{Code: "55P03"}, false},
		{"check violation", &pgconn.PgError{Code: "23514"}, false},
		{"not a pg error", errs.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestBackoff(t *testing.T) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		base := backoffBase << attempt

		got := backoff(attempt)

		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/5)
	}
}
