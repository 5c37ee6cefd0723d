package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Handler processes a decoded interaction event. A returned error is
// logged; the message is committed either way so a poison event cannot
// wedge the consumer.
type Handler func(ctx context.Context, ev InteractionEvent) error

// Consumer reads interaction events from Kafka and hands them to a
// Handler. Used by the notification fan-out.
type Consumer struct {
	reader *kafka.Reader
	handle Handler
	logger *slog.Logger
}

// NewConsumer creates a consumer in the given consumer group.
func NewConsumer(brokers, groupID string, h Handler, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        strings.Split(brokers, ","),
			GroupID:        groupID,
			Topic:          Topic,
			MinBytes:       10e3,
			MaxBytes:       10e6,
			CommitInterval: time.Second,
		}),
		handle: h,
		logger: logger,
	}
}

// Run consumes until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.logger.Warn("failed to close kafka reader", "error", err)
		}
	}()

	c.logger.Info("interaction consumer started",
		"group", c.reader.Config().GroupID,
		"topic", c.reader.Config().Topic)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("interaction consumer shutting down")
				return nil
			}
			c.logger.Error("failed to fetch message", "error", err)
			time.Sleep(time.Second)
			continue
		}

		var ev InteractionEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			c.logger.Warn("skipping malformed interaction event", "error", err)
		} else if err := c.handle(ctx, ev); err != nil {
			c.logger.Error("interaction handler failed",
				"kind", ev.Kind,
				"target", ev.TargetUserID,
				"error", err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("failed to commit message", "error", err)
		}
	}
}
