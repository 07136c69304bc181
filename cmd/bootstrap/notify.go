package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/notify"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.Notifier {
	var channels []notify.Channel

	if cfg.Notify.LineEnabled() {
		channels = append(channels, notify.NewLineClient(cfg.Notify.LineURL, cfg.Notify.LineToken, cfg.Hotel.Name, cfg.Notify.Timeout))
	}

	var publisher *notify.AMQPPublisher
	if cfg.Notify.AMQPEnabled() {
		publisher = notify.NewAMQPPublisher(cfg.Notify.AMQPURL, cfg.Notify.BookingQueue)
		channels = append(channels, publisher)
	}

	if len(channels) == 0 {
		logger.Info("booking notifications disabled")
		return commands.NopNotifier{}
	}

	dispatcher := notify.NewDispatcher(cfg.Notify.Timeout, cfg.Notify.MaxInFlight, channels...)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := dispatcher.Shutdown(ctx); err != nil {
				logger.Warn("notifications still in flight at shutdown", "error", err.Error())
			}
			if publisher != nil {
				return publisher.Close()
			}
			return nil
		},
	})
	return dispatcher
}
