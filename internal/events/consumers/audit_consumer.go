package consumers

import (
	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/observability"
	"context"
	"errors"
	"fmt"
)

// EventSource delivers events to a handler until the context ends
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error
	Close() error
}

// AuditConsumer reads domain events back from the topic, logs each one
// with its tenant and counts them by type.
type AuditConsumer struct {
	source EventSource
	logger *observability.Logger
}

// NewAuditConsumer creates a new AuditConsumer
func NewAuditConsumer(source EventSource, logger *observability.Logger) *AuditConsumer {
	return &AuditConsumer{source: source, logger: logger}
}

// Start blocks until ctx is cancelled or the source fails
func (c *AuditConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, "Starting audit consumer")

	err := c.source.ConsumeEvents(ctx, c.handle)
	if err != nil && !errors.Is(err, context.Canceled) {
		c.logger.Error(ctx, "audit consumer stopped", err)
		return err
	}
	return nil
}

func (c *AuditConsumer) handle(ctx context.Context, event kafka.EventMessage) error {
	if event.Type == "" {
		return fmt.Errorf("event %s has no type", event.ID)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_timestamp", Value: event.Timestamp},
		observability.Field{Key: "event_data", Value: event.Data},
	)
	c.logger.Info(ctx, fmt.Sprintf("domain event %s", event.Type))
	observability.ObserveEventConsumed(event.Type)
	return nil
}

// Stop closes the underlying reader
func (c *AuditConsumer) Stop() error {
	c.logger.Info(context.Background(), "Stopping audit consumer")
	return c.source.Close()
}
