package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

type MaintenanceCommands interface {
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type maintenanceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMaintenanceUseCase(uow shared.UnitOfWork, clk clock.Clock) MaintenanceCommands {
	return &maintenanceUseCaseImpl{uow: uow, clock: clk}
}

func (uc *maintenanceUseCaseImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), uc.clock.Now())
		deleted = n
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, shared.ErrPersistenceFailure)
	}
	if deleted > 0 {
		slog.Info("purged expired idempotency keys", "count", deleted)
	}
	return deleted, nil
}
