package events

import (
	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/observability"
	"context"
	"time"

	"github.com/google/uuid"
)

// Domain event types published on the campaign events topic
const (
	SessionCreated       = "session.created"
	SessionDeleted       = "session.deleted"
	SessionStatusChanged = "session.status_changed"
	CampaignCreated      = "campaign.created"
	CampaignPaused       = "campaign.paused"
	CampaignResumed      = "campaign.resumed"
	CampaignDeleted      = "campaign.deleted"
)

const publishTimeout = 5 * time.Second

// EventProducer writes an event envelope to the broker
type EventProducer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher publishes domain events. Publishing is best-effort: failures are
// logged and never returned. A nil producer turns the publisher into a no-op.
type Publisher struct {
	producer EventProducer
	logger   *observability.Logger
	now      func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(producer EventProducer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// Publish sends one event. tenantID may be nil for sessions without a tenant.
func (p *Publisher) Publish(ctx context.Context, eventType string, tenantID *uuid.UUID, data map[string]interface{}) {
	if p == nil || p.producer == nil {
		return
	}

	tenant := ""
	if tenantID != nil {
		tenant = tenantID.String()
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		TenantID:  tenant,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	// The event outlives the request that triggered it.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.producer.PublishEvent(pubCtx, event); err != nil {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "event_type", Value: eventType},
			observability.Field{Key: "tenant_id", Value: tenant},
		)
		p.logger.WarnWithError(ctx, "failed to publish event", err)
	}
}
