//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/caldate"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2030-01-07 is a Monday.
var (
	weekStart = caldate.MustParse("2030-01-07")
	weekEnd   = caldate.MustParse("2030-01-13")
)

type upsertCall struct {
	date    string
	price   string
	initial int
}

func captureUpserts(m *txMocks, calls *[]upsertCall) {
	m.inventory.EXPECT().UpsertPriceOverride(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, date caldate.Date, initial int, price decimal.Decimal) error {
			*calls = append(*calls, upsertCall{date: date.String(), price: price.StringFixed(2), initial: initial})
			return nil
		}).AnyTimes()
}

func TestInventoryCommands_BulkUpdatePrices(t *testing.T) {
	ctx := context.Background()

	t.Run("success: each mode derives the price from the base", func(t *testing.T) {
		cases := []struct {
			mode  string
			value string
			want  string
		}{
			{"fixed", "1750", "1750.00"},
			{"increase_percent", "10", "1100.00"},
			{"decrease_percent", "12.5", "875.00"},
			{"increase_fixed", "250.50", "1250.50"},
			{"decrease_fixed", "1000", "0.00"},
		}
		for _, tc := range cases {
			t.Run(tc.mode, func(t *testing.T) {
				m := newTxMocks(t)
				uc := commands.NewInventoryUseCase(m.uow)
				b := builder.NewBookingBuilder()

				m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
				m.reads.EXPECT().CountRooms(gomock.Any(), b.RoomTypeID).Return(4, nil)
				var calls []upsertCall
				captureUpserts(m, &calls)

				n, err := uc.BulkUpdatePrices(ctx, commands.BulkPriceInput{
					RoomTypeID: b.RoomTypeID,
					From:       weekStart,
					To:         weekEnd,
					Mode:       tc.mode,
					Value:      decimal.RequireFromString(tc.value),
				})

				require.NoError(t, err)
				assert.Equal(t, 7, n)
				require.Len(t, calls, 7)
				for _, c := range calls {
					assert.Equal(t, tc.want, c.price)
					assert.Equal(t, 4, c.initial)
				}
			})
		}
	})

	t.Run("success: weekday filter touches only matching dates", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)
		b := builder.NewBookingBuilder()

		m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
		m.reads.EXPECT().CountRooms(gomock.Any(), b.RoomTypeID).Return(3, nil)
		var calls []upsertCall
		captureUpserts(m, &calls)

		n, err := uc.BulkUpdatePrices(ctx, commands.BulkPriceInput{
			RoomTypeID: b.RoomTypeID,
			From:       weekStart,
			To:         weekEnd,
			Mode:       "fixed",
			Value:      decimal.NewFromInt(2000),
			Weekdays:   []int{int(time.Saturday), int(time.Sunday)},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []upsertCall{
			{date: "2030-01-12", price: "2000.00", initial: 3},
			{date: "2030-01-13", price: "2000.00", initial: 3},
		}, calls)
	})

	t.Run("success: a room type without rooms still gets one unit per created day", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)
		b := builder.NewBookingBuilder()

		m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
		m.reads.EXPECT().CountRooms(gomock.Any(), b.RoomTypeID).Return(0, nil)
		var calls []upsertCall
		captureUpserts(m, &calls)

		_, err := uc.BulkUpdatePrices(ctx, commands.BulkPriceInput{
			RoomTypeID: b.RoomTypeID, From: weekStart, To: weekStart, Mode: "fixed", Value: decimal.NewFromInt(900),
		})

		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, 1, calls[0].initial)
	})

	t.Run("errors", func(t *testing.T) {
		cases := []struct {
			name    string
			in      func(id uuid.UUID) commands.BulkPriceInput
			rtErr   error
			reached bool
			wantErr error
		}{
			{
				name: "from after to",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekEnd, To: weekStart, Mode: "fixed", Value: decimal.NewFromInt(1)}
				},
				wantErr: shared.ErrInvalidRange,
			},
			{
				name: "period longer than the admin cap",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekStart.AddDays(commands.MaxAdminPeriodDays), Mode: "fixed", Value: decimal.NewFromInt(1)}
				},
				wantErr: shared.ErrTooManyNights,
			},
			{
				name: "unknown mode",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "double", Value: decimal.NewFromInt(1)}
				},
				wantErr: commands.ErrInvalidPricing,
			},
			{
				name: "negative value",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "increase_fixed", Value: decimal.NewFromInt(-5)}
				},
				wantErr: commands.ErrInvalidPricing,
			},
			{
				name: "value beyond the storable amount",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "fixed", Value: decimal.RequireFromString("10000000000")}
				},
				wantErr: commands.ErrInvalidPricing,
			},
			{
				name: "increase overflows the storable amount",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "increase_percent", Value: decimal.NewFromInt(999999999)}
				},
				reached: true,
				wantErr: commands.ErrInvalidPricing,
			},
			{
				name: "weekday out of range",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "fixed", Value: decimal.NewFromInt(1), Weekdays: []int{7}}
				},
				wantErr: commands.ErrInvalidPricing,
			},
			{
				name: "decrease below zero",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "decrease_fixed", Value: decimal.NewFromInt(1001)}
				},
				reached: true,
				wantErr: commands.ErrInvalidPricing,
			},
			{
				name: "unknown room type",
				in: func(id uuid.UUID) commands.BulkPriceInput {
					return commands.BulkPriceInput{RoomTypeID: id, From: weekStart, To: weekEnd, Mode: "fixed", Value: decimal.NewFromInt(1)}
				},
				rtErr:   infra.WrapRepoErr("room type not found", nil, infra.KindNotFound),
				wantErr: shared.ErrRoomTypeNotFound,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				m := newTxMocks(t)
				uc := commands.NewInventoryUseCase(m.uow)
				b := builder.NewBookingBuilder()

				if tc.rtErr != nil {
					m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(nil, tc.rtErr)
				}
				if tc.reached {
					m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
				}

				n, err := uc.BulkUpdatePrices(ctx, tc.in(b.RoomTypeID))

				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected [%v] but got [%v]", tc.wantErr, err)
				assert.Zero(t, n)
			})
		}
	})

	t.Run("error: write failure rolls the batch back", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)
		b := builder.NewBookingBuilder()

		m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
		m.reads.EXPECT().CountRooms(gomock.Any(), b.RoomTypeID).Return(2, nil)
		m.inventory.EXPECT().UpsertPriceOverride(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), 2, gomock.Any()).
			Return(infra.WrapRepoErr("failed to upsert price override", assert.AnError))

		n, err := uc.BulkUpdatePrices(ctx, commands.BulkPriceInput{
			RoomTypeID: b.RoomTypeID, From: weekStart, To: weekEnd, Mode: "fixed", Value: decimal.NewFromInt(1),
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrPersistenceFailure))
		assert.Zero(t, n)
	})
}

func TestInventoryCommands_ResetPriceOverride(t *testing.T) {
	ctx := context.Background()
	roomTypeID := uuid.New()

	testCases := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "success"},
		{
			name:    "error: day does not exist",
			repoErr: infra.WrapRepoErr("inventory day not found", nil, infra.KindNotFound),
			wantErr: commands.ErrInventoryDayNotFound,
		},
		{
			name:    "error: database failure",
			repoErr: infra.WrapRepoErr("failed to reset price override", assert.AnError),
			wantErr: shared.ErrPersistenceFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			uc := commands.NewInventoryUseCase(m.uow)
			m.inventory.EXPECT().ResetPriceOverride(gomock.Any(), gomock.Any(), roomTypeID, weekStart).Return(tc.repoErr)

			err := uc.ResetPriceOverride(ctx, roomTypeID, weekStart)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected [%v] but got [%v]", tc.wantErr, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInventoryCommands_SeedInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("success: every date of the inclusive period is written", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)
		b := builder.NewBookingBuilder()

		m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
		var dates []string
		m.inventory.EXPECT().UpsertTotal(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), 5).
			DoAndReturn(func(_ context.Context, _ any, _ uuid.UUID, date caldate.Date, _ int) error {
				dates = append(dates, date.String())
				return nil
			}).Times(3)

		n, err := uc.SeedInventory(ctx, commands.SeedInventoryInput{
			RoomTypeID: b.RoomTypeID, From: weekStart, To: weekStart.AddDays(2), Total: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, []string{"2030-01-07", "2030-01-08", "2030-01-09"}, dates)
	})

	t.Run("error: negative total", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)

		_, err := uc.SeedInventory(ctx, commands.SeedInventoryInput{
			RoomTypeID: uuid.New(), From: weekStart, To: weekEnd, Total: -1,
		})

		assert.ErrorIs(t, err, commands.ErrInvalidInventoryTotal)
	})

	t.Run("error: total below committed units", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)
		b := builder.NewBookingBuilder()

		m.reads.EXPECT().RoomTypeByID(gomock.Any(), b.RoomTypeID).Return(b.BuildRoomTypeSnapshot(), nil)
		m.inventory.EXPECT().UpsertTotal(gomock.Any(), gomock.Any(), b.RoomTypeID, gomock.Any(), 0).
			Return(infra.WrapRepoErr("total below committed", nil, infra.KindConflict))

		_, err := uc.SeedInventory(ctx, commands.SeedInventoryInput{
			RoomTypeID: b.RoomTypeID, From: weekStart, To: weekEnd, Total: 0,
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrCapacityBelowCommitted))
	})

	t.Run("error: unknown room type", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewInventoryUseCase(m.uow)
		id := uuid.New()

		m.reads.EXPECT().RoomTypeByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound))

		_, err := uc.SeedInventory(ctx, commands.SeedInventoryInput{RoomTypeID: id, From: weekStart, To: weekEnd, Total: 2})

		assert.ErrorIs(t, err, shared.ErrRoomTypeNotFound)
	})
}

func TestMaintenanceCommands_PurgeExpiredIdempotencyKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deletes keys expired at the current clock", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewMaintenanceUseCase(m.uow, clock.NewMockClock(fixedNow))
		m.idem.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), fixedNow).Return(int64(12), nil)

		n, err := uc.PurgeExpiredIdempotencyKeys(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(12), n)
	})

	t.Run("error: database failure", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewMaintenanceUseCase(m.uow, clock.NewMockClock(fixedNow))
		m.idem.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), fixedNow).
			Return(int64(0), infra.WrapRepoErr("failed to purge idempotency keys", assert.AnError))

		n, err := uc.PurgeExpiredIdempotencyKeys(ctx)

		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrPersistenceFailure))
		assert.Zero(t, n)
	})
}
