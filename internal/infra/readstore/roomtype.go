package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeReadQueries interface {
	GetRoomType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RoomTypes, error)
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.RoomTypes, error)
}

type RoomTypeReadStore struct {
	queries RoomTypeReadQueries
	db      sqlc.DBTX
}

func NewRoomTypeReadStore(queries RoomTypeReadQueries, db sqlc.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomType(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}

	view, err := toRoomTypeView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert room type row", err)
	}
	return view, nil
}

func (r *RoomTypeReadStore) List(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeView, 0, len(rows))
	for _, row := range rows {
		view, err := toRoomTypeView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert room type row", err)
		}
		result = append(result, view)
	}
	return result, nil
}

func toRoomTypeView(row sqlc.RoomTypes) (*queries.RoomTypeView, error) {
	base, err := pgconv.DecimalFromNumeric(row.BasePrice)
	if err != nil {
		return nil, err
	}
	return &queries.RoomTypeView{
		ID:        row.ID,
		Name:      row.Name,
		Capacity:  int(row.Capacity),
		BasePrice: base,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
