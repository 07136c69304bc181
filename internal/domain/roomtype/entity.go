package roomtype

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName      = errors.New("room type name is required")
	ErrInvalidCapacity  = errors.New("room type capacity must be positive")
	ErrNegativeBase     = errors.New("base price cannot be negative")
	ErrRoomTypeMismatch = errors.New("room does not belong to the booked room type")
)

// RoomType is reference data for the reservation engine; it is never mutated here.
type RoomType struct {
	id        uuid.UUID
	name      string
	capacity  int
	basePrice decimal.Decimal
}

func ReconstructRoomType(id uuid.UUID, name string, capacity int, basePrice decimal.Decimal) (*RoomType, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBase
	}
	return &RoomType{id: id, name: name, capacity: capacity, basePrice: basePrice}, nil
}

func (r *RoomType) ID() uuid.UUID              { return r.id }
func (r *RoomType) Name() string               { return r.name }
func (r *RoomType) Capacity() int              { return r.capacity }
func (r *RoomType) BasePrice() decimal.Decimal { return r.basePrice }

// Room is a physical unit of a room type.
type Room struct {
	id         uuid.UUID
	roomTypeID uuid.UUID
	number     string
}

func ReconstructRoom(id, roomTypeID uuid.UUID, number string) *Room {
	return &Room{id: id, roomTypeID: roomTypeID, number: number}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Room) Number() string        { return r.number }

// CanServe reports whether the room may be assigned to a night booked for roomTypeID.
func (r *Room) CanServe(roomTypeID uuid.UUID) error {
	if r.roomTypeID != roomTypeID {
		return ErrRoomTypeMismatch
	}
	return nil
}
