package components

import (
	"hotel-booking/internal/infra/readstore"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/infra/uow"
	"hotel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// The room type store is left concrete; RedisModule decides whether it is
// wrapped by the cache before being exposed as queries.RoomTypeStore.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// RoomType
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomTypeReadQueries)),
		),
		readstore.NewRoomTypeReadStore,
		// Inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InventoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewInventoryReadStore,
			fx.As(new(queries.InventoryStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
