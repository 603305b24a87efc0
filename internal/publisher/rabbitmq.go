package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"podcast_tracker/internal/domain"
)

// RabbitMQ publishes episode change events to a durable direct exchange.
// Consumers bind the configured queue to receive create/update actions.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// declareTopology sets up the durable exchange, the queue, and the binding
// between them. Declarations are idempotent, so reconnecting services can
// call this unconditionally.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

type EpisodeMessage struct {
	Action      string         `json:"action"` // "create" or "update"
	PodcastUUID string         `json:"podcast_uuid"`
	Episode     domain.Episode `json:"episode"`
	Timestamp   time.Time      `json:"timestamp"`
}

func (r *RabbitMQ) Publish(ctx context.Context, episode *domain.Episode, isNew bool) error {
	action := "update"
	if isNew {
		action = "create"
	}

	body, err := json.Marshal(EpisodeMessage{
		Action:      action,
		PodcastUUID: episode.PodcastUUID,
		Episode:     *episode,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
	}
	if err := r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, pub); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published episode",
		"uuid", episode.UUID,
		"podcast", episode.PodcastUUID,
		"action", action,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
