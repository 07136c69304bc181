package bootstrap

import (
	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.NewReservationRecorder,
			fx.As(new(commands.ReservationRecorder)),
		),
	),
)
