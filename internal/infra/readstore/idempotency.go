package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
	}
}

// Get returns the key even when expired; the caller decides whether to reclaim it.
func (r *IdempotencyReadStore) Get(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, endpoint string) (*queries.IdempotencyKeyView, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{
		Key:      key,
		Endpoint: endpoint,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &queries.IdempotencyKeyView{
		Key:              row.Key,
		Endpoint:         row.Endpoint,
		RequestHash:      row.RequestHash,
		ResponseBodyHash: pgconv.StringPtrFromPgtype(row.ResponseBodyHash),
		Status:           row.Status,
		ResultBookingID:  pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:        pgconv.TimeFromPgtype(row.ExpiresAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
