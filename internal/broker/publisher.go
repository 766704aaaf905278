// Package broker publishes billing events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/streadway/amqp"
	"github.com/wb-go/wbf/logger"
)

const exchangeKind = "fanout"

type Config struct {
	URL          string
	Exchange     string
	DialAttempts int
	DialDelay    time.Duration
}

// Publisher sends every BillingEvent to a durable fanout exchange.
// With an empty URL it only logs, so the service runs without a broker.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      logger.Logger
}

func NewPublisher(cfg Config, log logger.Logger) (*Publisher, error) {
	p := &Publisher{exchange: cfg.Exchange, log: log}
	if cfg.URL == "" {
		log.Warn("rabbitmq url is empty, billing events will not be published")
		return p, nil
	}

	attempts := cfg.DialAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		conn *amqp.Connection
		err  error
	)
	for i := 0; i < attempts; i++ {
		conn, err = amqp.Dial(cfg.URL)
		if err == nil {
			break
		}
		log.Warn("rabbitmq dial failed",
			logger.Int("attempt", i+1),
			logger.Int("max_attempts", attempts),
			logger.String("error", err.Error()),
		)
		time.Sleep(cfg.DialDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", cfg.Exchange, err)
	}

	p.conn = conn
	p.ch = ch
	log.Info("rabbitmq publisher ready", logger.String("exchange", cfg.Exchange))

	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, e domain.BillingEvent) error {
	msg, err := encodeEvent(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		p.log.LogAttrs(ctx, logger.DebugLevel, "billing event dropped, no broker",
			logger.String("type", string(e.Type)),
			logger.String("reservation_id", e.ReservationID),
		)
		return nil
	}

	if err = p.ch.Publish(p.exchange, string(e.Type), false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	p.ch = nil
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}

func encodeEvent(e domain.BillingEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode billing event: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    e.ID,
		Type:         string(e.Type),
		Timestamp:    e.OccurredAt,
		Body:         body,
	}, nil
}
