package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpPublisher is the subset of *amqp.Channel used by the transport.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpTransport struct {
	conn    *amqp.Connection
	channel amqpPublisher
	queue   string
}

// NewAMQPTransport connects to the broker at cfg.URL and declares the
// durable cfg.Queue. Messages are published as persistent JSON for a
// separate mail worker to deliver.
func NewAMQPTransport(cfg config.AMQPMail) (MailTransport, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	return &amqpTransport{conn: conn, channel: ch, queue: q.Name}, nil
}

func (t *amqpTransport) Send(ctx context.Context, msg models.Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("amqp marshal message: %w", err)
	}

	err = t.channel.PublishWithContext(ctx, "", t.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         string(msg.Kind),
	})
	if err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}

	return nil
}

func (t *amqpTransport) Close() error {
	chErr := t.channel.Close()
	if t.conn == nil {
		return chErr
	}
	if err := t.conn.Close(); err != nil {
		return err
	}

	return chErr
}
