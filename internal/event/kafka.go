package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

// MessageWriter is the part of *kafka.Writer the relay needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// KafkaRelay forwards every event published on a bus to a Kafka topic.
type KafkaRelay struct {
	bus    Bus
	writer MessageWriter
	done   chan struct{}
}

func NewKafkaRelay(bus Bus, writer MessageWriter) *KafkaRelay {
	return &KafkaRelay{bus: bus, writer: writer, done: make(chan struct{})}
}

// Run blocks until ctx is cancelled. Write failures are logged and skipped.
func (r *KafkaRelay) Run(ctx context.Context) {
	events, unsubscribe := r.bus.Subscribe()
	defer unsubscribe()
	defer close(r.done)

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := r.forward(ctx, e); err != nil {
				slog.Error("kafka relay failed", "type", e.Type, "event_id", e.ID, "error", err)
			}
		}
	}
}

// Done is closed once Run has returned.
func (r *KafkaRelay) Done() <-chan struct{} {
	return r.done
}

func (r *KafkaRelay) forward(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(e.ActorID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}
	if err := r.writer.WriteMessages(writeCtx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	slog.Debug("event relayed to kafka", "type", e.Type, "event_id", e.ID)
	return nil
}

func (r *KafkaRelay) Close() error {
	return r.writer.Close()
}
