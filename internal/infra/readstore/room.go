package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomReadQueries interface {
	GetRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	CountRoomsByRoomType(ctx context.Context, db sqlc.DBTX, roomTypeID uuid.UUID) (int64, error)
}

// RoomReadStore serves the command side's physical-room lookups.
type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (sqlc.Rooms, error) {
	row, err := r.queries.GetRoom(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Rooms{}, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return sqlc.Rooms{}, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return row, nil
}

func (r *RoomReadStore) CountByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int, error) {
	n, err := r.queries.CountRoomsByRoomType(ctx, r.db, roomTypeID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count rooms", err)
	}
	return int(n), nil
}
