package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPSink publishes notifications to a durable RabbitMQ queue consumed by
// an external mailer process.
type AMQPSink struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewAMQPSink dials the broker and declares the notification queue
func NewAMQPSink(url, queue string) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp sink: dial %s: %w", url, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp sink: open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp sink: declare queue %s: %w", queue, err)
	}

	return &AMQPSink{conn: conn, ch: ch, queue: queue}, nil
}

// Send publishes one message to the notification queue
func (s *AMQPSink) Send(ctx context.Context, email, subject, message string) error {
	body, err := json.Marshal(sinkPayload{
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("amqp sink: marshal payload: %w", err)
	}

	err = s.ch.PublishWithContext(
		ctx,
		"",      // default exchange
		s.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("amqp sink: publish to %s: %w", s.queue, err)
	}
	return nil
}

// Close releases the channel and connection
func (s *AMQPSink) Close() error {
	if err := s.ch.Close(); err != nil {
		s.conn.Close()
		return fmt.Errorf("amqp sink: close channel: %w", err)
	}
	return s.conn.Close()
}
