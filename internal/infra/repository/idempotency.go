package repository

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) (int64, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	ReleaseIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint, resultHash string, bookingID uuid.UUID) error {
	n, err := r.queries.UpdateIdempotencyKeyCompleted(ctx, tx, sqlc.UpdateIdempotencyKeyCompletedParams{
		ResponseBodyHash: pgconv.StringToPgtype(resultHash),
		ResultBookingID:  pgconv.UUIDToPgtype(bookingID),
		Key:              key,
		Endpoint:         endpoint,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key is not processing", nil, infra.KindConflict)
	}
	return nil
}

func (r *IdempotencyRepository) ClaimExpired(
	ctx context.Context,
	tx sqlc.DBTX,
	key uuid.UUID,
	endpoint, requestHash string,
	expiresAt, now time.Time,
) (bool, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, sqlc.ClaimExpiredIdempotencyKeyParams{
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Key:         key,
		Endpoint:    endpoint,
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

// Release drops a key still in processing so the client can retry with it.
func (r *IdempotencyRepository) Release(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) error {
	if _, err := r.queries.ReleaseIdempotencyKey(ctx, tx, sqlc.ReleaseIdempotencyKeyParams{
		Key:      key,
		Endpoint: endpoint,
	}); err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	n, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return n, nil
}
