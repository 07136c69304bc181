package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewBookingHandler,
		api.NewInventoryHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	booking *api.BookingHandler,
	inventory *api.InventoryHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Reservation:  reservation,
		Booking:      booking,
		Inventory:    inventory,
	}
}
