package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

// BookingCreatedEvent is the JSON body published on the booking queue.
type BookingCreatedEvent struct {
	BookingID    uuid.UUID       `json:"booking_id"`
	RoomTypeID   uuid.UUID       `json:"room_type_id"`
	RoomTypeName string          `json:"room_type_name"`
	GuestName    string          `json:"guest_name"`
	GuestEmail   string          `json:"guest_email"`
	CheckIn      string          `json:"check_in"`
	CheckOut     string          `json:"check_out"`
	Nights       int             `json:"nights"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
}

// AMQPPublisher keeps one connection and reopens it lazily after failures.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue}
}

func (p *AMQPPublisher) Name() string { return "amqp" }

func (p *AMQPPublisher) Deliver(ctx context.Context, summary commands.BookingSummary) error {
	body, err := json.Marshal(BookingCreatedEvent{
		BookingID:    summary.BookingID,
		RoomTypeID:   summary.RoomTypeID,
		RoomTypeName: summary.RoomTypeName,
		GuestName:    summary.GuestName,
		GuestEmail:   summary.GuestEmail,
		CheckIn:      summary.CheckIn.String(),
		CheckOut:     summary.CheckOut.String(),
		Nights:       summary.Nights,
		TotalPrice:   summary.Total,
		CreatedAt:    summary.CreatedAt,
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    summary.BookingID.String(),
			Timestamp:    time.Now().UTC(),
			Type:         "booking.created",
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return errs.Wrap(err, "publish booking event")
	}
	return nil
}

// channel must be called with mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open rabbitmq channel")
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare booking queue")
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}
