package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/core/config"
	"storefront-api/internal/core/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher sends domain events to a message broker.
type Publisher interface {
	// Publish encodes payload as JSON and sends it under key.
	Publish(ctx context.Context, key string, payload any) error
	// Close flushes and releases the underlying connections.
	Close() error
}

// NewPublisher returns a Kafka publisher when brokers are configured, or a no-op one otherwise.
func NewPublisher(cfg config.KafkaConfig) Publisher {
	if strings.TrimSpace(cfg.Brokers) == "" {
		logger.Get().Info("Kafka brokers not configured, order events disabled")
		return NopPublisher{}
	}
	return NewKafkaPublisher(cfg.Brokers, cfg.OrdersTopic)
}

// KafkaPublisher publishes JSON events to a single Kafka topic.
type KafkaPublisher struct {
	w *kafka.Writer
}

// NewKafkaPublisher creates a synchronous writer that waits for all replicas.
func NewKafkaPublisher(brokers, topic string) *KafkaPublisher {
	addrs := strings.Split(brokers, ",")
	for i := range addrs {
		addrs[i] = strings.TrimSpace(addrs[i])
	}

	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(addrs...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			WriteTimeout: 5 * time.Second,
		},
	}
}

// Publish writes one message keyed by key.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload any) error {
	msg, err := newMessage(key, payload)
	if err != nil {
		return err
	}

	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", p.w.Topic, err)
	}

	logger.Get().Debug("Event published", zap.String("topic", p.w.Topic), zap.String("key", key))
	return nil
}

// Close closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

func newMessage(key string, payload any) (kafka.Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish does nothing.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }
