package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Topic is the Kafka topic carrying interaction events.
const Topic = "snapgram.interactions"

type kafkaProducer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaProducer creates a producer writing to the interactions topic.
// brokers is a comma-separated list of bootstrap servers.
func NewKafkaProducer(brokers string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &kafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        Topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

// Emit publishes a single event, keyed by the recipient so one user's
// notifications stay ordered within a partition.
func (p *kafkaProducer) Emit(ctx context.Context, ev InteractionEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal interaction event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.TargetUserID, 10)),
		Value: value,
		Time:  ev.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write interaction event: %w", err)
	}

	p.logger.Debug("interaction event emitted",
		"kind", ev.Kind,
		"actor", ev.ActorID,
		"target", ev.TargetUserID)
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
