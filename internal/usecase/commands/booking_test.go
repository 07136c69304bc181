//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	inventory *sharedmock.MockInventoryRepository
	bookings  *sharedmock.MockBookingRepository
	idem      *sharedmock.MockIdempotencyRepository
}

// newTxMocks runs every Within/WithinRetry callback against the same mocked transaction.
func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		reads:     sharedmock.NewMockCommandReads(ctrl),
		inventory: sharedmock.NewMockInventoryRepository(ctrl),
		bookings:  sharedmock.NewMockBookingRepository(ctrl),
		idem:      sharedmock.NewMockIdempotencyRepository(ctrl),
	}

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, m.tx)
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().WithinRetry(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Inventory().Return(m.inventory).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idem).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return m
}

// =============================================================================
// UpdateStatus
// =============================================================================

func TestBookingCommands_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		current     booking.Status
		next        string
		findErr     error
		wantChanged bool
		wantUpdate  bool
		wantErr     error
	}{
		{
			name:        "success: HOLD to CONFIRMED",
			current:     booking.StatusHold,
			next:        "CONFIRMED",
			wantChanged: true,
			wantUpdate:  true,
		},
		{
			name:        "success: CONFIRMED to CANCELLED",
			current:     booking.StatusConfirmed,
			next:        "CANCELLED",
			wantChanged: true,
			wantUpdate:  true,
		},
		{
			name:        "success: same status is a no-op",
			current:     booking.StatusConfirmed,
			next:        "CONFIRMED",
			wantChanged: false,
		},
		{
			name:    "error: CANCELLED is terminal",
			current: booking.StatusCancelled,
			next:    "HOLD",
			wantErr: commands.ErrInvalidTransition,
		},
		{
			name:    "error: CONFIRMED cannot return to HOLD",
			current: booking.StatusConfirmed,
			next:    "HOLD",
			wantErr: commands.ErrInvalidTransition,
		},
		{
			name:    "error: unknown status value",
			current: booking.StatusHold,
			next:    "PAID",
			wantErr: commands.ErrInvalidStatus,
		},
		{
			name:    "error: booking does not exist",
			next:    "CONFIRMED",
			findErr: infra.WrapRepoErr("booking not found", nil, infra.KindNotFound),
			wantErr: shared.ErrBookingNotFound,
		},
		{
			name:    "error: database failure",
			next:    "CONFIRMED",
			findErr: infra.WrapRepoErr("failed to lock booking", assert.AnError),
			wantErr: shared.ErrPersistenceFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			uc := commands.NewBookingUseCase(m.uow, clock.NewMockClock(fixedNow))

			b := builder.NewBookingBuilder().WithStatus(tc.current)
			if tc.findErr != nil {
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(nil, tc.findErr)
			} else if booking.Status(tc.next).IsValid() {
				domain, err := b.BuildDomain()
				require.NoError(t, err)
				m.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(domain, nil)
			}
			if tc.wantUpdate {
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, updated *booking.Booking) error {
						assert.Equal(t, booking.Status(tc.next), updated.Status())
						assert.Equal(t, fixedNow, updated.UpdatedAt())
						return nil
					})
			}

			res, err := uc.UpdateStatus(ctx, b.ID, tc.next)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected [%v] but got [%v]", tc.wantErr, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantChanged, res.Changed)
			assert.Equal(t, tc.next, res.Status)
			assert.Equal(t, b.ID, res.BookingID)
		})
	}
}

// =============================================================================
// AssignRoom
// =============================================================================

func TestBookingCommands_AssignRoom(t *testing.T) {
	ctx := context.Background()
	otherRoomType := uuid.New()

	testCases := []struct {
		name    string
		status  booking.Status
		room    func(b *builder.BookingBuilder) *shared.RoomSnapshot
		roomErr error
		clear   bool
		badItem bool
		wantErr error
	}{
		{
			name:   "success: room of the booked type",
			status: booking.StatusConfirmed,
			room: func(b *builder.BookingBuilder) *shared.RoomSnapshot {
				return &shared.RoomSnapshot{ID: uuid.New(), RoomTypeID: b.RoomTypeID, Number: "101"}
			},
		},
		{
			name:   "success: nil room clears the assignment",
			status: booking.StatusHold,
			clear:  true,
		},
		{
			name:   "error: room of another type",
			status: booking.StatusHold,
			room: func(*builder.BookingBuilder) *shared.RoomSnapshot {
				return &shared.RoomSnapshot{ID: uuid.New(), RoomTypeID: otherRoomType, Number: "201"}
			},
			wantErr: commands.ErrRoomTypeMismatch,
		},
		{
			name:    "error: room does not exist",
			status:  booking.StatusHold,
			roomErr: infra.WrapRepoErr("room not found", nil, infra.KindNotFound),
			wantErr: commands.ErrRoomNotFound,
		},
		{
			name:    "error: night is not part of the booking",
			status:  booking.StatusHold,
			badItem: true,
			wantErr: commands.ErrLineItemNotFound,
		},
		{
			name:    "error: cancelled booking",
			status:  booking.StatusCancelled,
			wantErr: commands.ErrBookingNotAssignable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			uc := commands.NewBookingUseCase(m.uow, clock.NewMockClock(fixedNow))

			b := builder.NewBookingBuilder().WithStatus(tc.status)
			domain, err := b.BuildDomain()
			require.NoError(t, err)
			m.bookings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(domain, nil)

			itemID := domain.Items()[0].ID()
			if tc.badItem {
				itemID = uuid.New()
			}

			var roomID *uuid.UUID
			switch {
			case tc.clear:
			case tc.roomErr != nil:
				id := uuid.New()
				roomID = &id
				m.reads.EXPECT().RoomByID(gomock.Any(), id).Return(nil, tc.roomErr)
			case tc.room != nil:
				snap := tc.room(b)
				roomID = &snap.ID
				m.reads.EXPECT().RoomByID(gomock.Any(), snap.ID).Return(snap, nil)
			default:
				id := uuid.New()
				roomID = &id
			}

			if tc.wantErr == nil {
				m.bookings.EXPECT().AssignRoom(gomock.Any(), gomock.Any(), b.ID, itemID, roomID).Return(nil)
			}

			err = uc.AssignRoom(ctx, b.ID, itemID, roomID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected [%v] but got [%v]", tc.wantErr, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
