package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	// extra attempts WithinRetry makes after the first
	maxRetries  = 3
	backoffBase = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// PostgresUoW hands each transaction a fresh set of write repositories bound
// to the shared query set. Reservations run through Within; admin writes that
// can safely replay run through WithinRetry.
type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger.With("component", "uow"),
	}
}

// Within runs fn exactly once under ReadCommitted. Lock waits surface as errors to the caller.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, 0, fn)
}

// WithinRetry retries serialization failures and deadlocks with jittered backoff.
func (u *PostgresUoW) WithinRetry(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.run(ctx, maxRetries, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// run rolls back explicitly after every failed attempt so a retry loop never
// stacks deferred rollbacks on held connections.
func (u *PostgresUoW) run(ctx context.Context, retries int, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, fn)
		if err == nil {
			return nil
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt >= retries {
			if retries > 0 {
				u.logger.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := backoff(attempt)
		u.logger.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

// backoff doubles per attempt and adds up to 20% jitter so competing admin
// writers on the same dates do not collide again in lockstep.
func backoff(attempt int) time.Duration {
	wait := time.Duration(1<<attempt) * backoffBase
	return wait + time.Duration(randInt63n(int64(wait/5)))
}

func randInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked off
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// built on first use
	inventoryRepo   shared.InventoryRepository
	bookingRepo     shared.BookingRepository
	idempotencyRepo shared.IdempotencyRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Inventory() shared.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.uow.q)
	}
	return t.inventoryRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	roomTypeStore    *readstore.RoomTypeReadStore
	roomStore        *readstore.RoomReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) RoomTypeByID(ctx context.Context, id uuid.UUID) (*shared.RoomTypeSnapshot, error) {
	if r.roomTypeStore == nil {
		r.roomTypeStore = readstore.NewRoomTypeReadStore(r.uow.q, r.dbtx)
	}

	rt, err := r.roomTypeStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RoomTypeSnapshot{
		ID:        rt.ID,
		Name:      rt.Name,
		Capacity:  rt.Capacity,
		BasePrice: rt.BasePrice,
	}, nil
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, err := r.rooms().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RoomSnapshot{
		ID:         room.ID,
		RoomTypeID: room.RoomTypeID,
		Number:     room.RoomNumber,
	}, nil
}

func (r *commandReads) CountRooms(ctx context.Context, roomTypeID uuid.UUID) (int, error) {
	return r.rooms().CountByRoomType(ctx, roomTypeID)
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key uuid.UUID, endpoint string) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}

	record, err := r.idempotencyStore.Get(ctx, r.dbtx, key, endpoint)
	if err != nil {
		return nil, err
	}

	return &shared.IdempotencyRecord{
		Key:             record.Key,
		Endpoint:        record.Endpoint,
		Status:          record.Status,
		RequestHash:     record.RequestHash,
		ResultBookingID: record.ResultBookingID,
		ExpiresAt:       record.ExpiresAt,
	}, nil
}
