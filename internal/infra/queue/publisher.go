package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"hotel-telegram-bot/internal/pkg/errs"
)

// AMQPPublisher publishes outbox payloads to one durable queue.
type AMQPPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "amqp dial"), errs.ErrUpstreamUnavailable)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, "amqp channel"), errs.ErrUpstreamUnavailable)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Mark(errs.Wrap(err, "amqp queue declare"), errs.ErrUpstreamUnavailable)
	}
	return &AMQPPublisher{conn: conn, ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         topic,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	})
	if err != nil {
		return errs.Mark(errs.Wrap(err, "amqp publish"), errs.ErrUpstreamUnavailable)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
		return errs.Wrap(err, "amqp channel close")
	}
	if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
		return errs.Wrap(err, "amqp connection close")
	}
	return nil
}

// LogPublisher writes each payload to the log. Used when no broker is
// configured so queued escalations still drain.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	slog.Warn("Escalation notification", "topic", topic, "payload", string(payload))
	return nil
}
