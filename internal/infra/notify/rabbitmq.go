package notify

import (
	"context"
	"log/slog"

	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the publishing half of *amqp.Channel.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Dial connects and declares the durable notification queue. Messages go
// through the default exchange with the queue name as routing key.
func Dial(cfg config.RabbitMQConfig) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open RabbitMQ channel")
	}

	if _, err := ch.QueueDeclare(
		cfg.Queue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare queue %s", cfg.Queue)
	}

	slog.Info("RabbitMQ initialized", "queue", cfg.Queue)
	return &Client{conn: conn, channel: ch, queue: cfg.Queue}, nil
}

func (c *Client) Channel() Channel { return c.channel }

func (c *Client) Queue() string { return c.queue }

func (c *Client) Close() error {
	var err error
	if c.channel != nil {
		err = c.channel.Close()
	}
	if c.conn != nil {
		if cerr := c.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	slog.Info("RabbitMQ connection closed")
	return err
}
