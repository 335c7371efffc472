package seatbooking

import (
	"context"
	"fmt"
	"time"

	"ticket-purchase/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// AMQPSeatReservationService publishes reservation instructions to a durable RabbitMQ queue
type AMQPSeatReservationService struct {
	conn  *amqp.Connection
	queue string
	log   *zap.Logger
	now   func() time.Time
}

func NewAMQPSeatReservationService(config utils.RabbitMQConfig, log *zap.Logger) (*AMQPSeatReservationService, error) {
	conn, err := amqp.Dial(config.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(
		config.Queue, // name
		true,         // durable
		false,        // autoDelete
		false,        // exclusive
		false,        // noWait
		nil,          // args
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", config.Queue, err)
	}

	return &AMQPSeatReservationService{
		conn:  conn,
		queue: config.Queue,
		log:   log.With(zap.String("gateway", "seat_amqp")),
		now:   time.Now,
	}, nil
}

func (s *AMQPSeatReservationService) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	requestID, _ := utils.GetRequestIDFromContext(ctx)
	body, err := NewSeatReservationMessage(accountID, seats, requestID, s.now()).Encode()
	if err != nil {
		return fmt.Errorf("encode reservation message: %w", err)
	}

	ch, err := s.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    s.now().UTC(),
		MessageId:    requestID,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		s.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish to %s: %w", s.queue, err)
	}

	s.log.Info("Seat reservation published",
		zap.String("queue", s.queue),
		zap.Int64("account_id", accountID),
		zap.Int("seats", seats),
	)
	return nil
}

func (s *AMQPSeatReservationService) Close() error {
	return s.conn.Close()
}
