package components

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(purgeExpiredIdempotencyKeys),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	NewReservationSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewBookingUseCase,
		commands.NewInventoryUseCase,
		commands.NewMaintenanceUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

func NewReservationSettings(cfg config.Config) commands.ReservationSettings {
	return commands.ReservationSettings{
		LockTimeout:    cfg.Reservation.LockTimeout,
		IdempotencyTTL: cfg.Reservation.IdempotencyTTL,
		MaxNights:      cfg.Reservation.MaxNights,
	}
}

func NewAvailabilityQueries(roomTypes queries.RoomTypeStore, ledgers queries.InventoryStore, cfg config.Config) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(roomTypes, ledgers, cfg.Reservation.MaxNights)
}

// purgeExpiredIdempotencyKeys clears keys left behind by earlier runs. A failure
// only delays the purge until the next start.
func purgeExpiredIdempotencyKeys(lc fx.Lifecycle, cmds commands.MaintenanceCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			purged, err := cmds.PurgeExpiredIdempotencyKeys(ctx)
			if err != nil {
				logger.Warn("failed to purge expired idempotency keys", "error", err.Error())
				return nil
			}
			logger.Info("purged expired idempotency keys", "count", purged)
			return nil
		},
	})
}
