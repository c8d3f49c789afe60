package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaign-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Enqueuer is the part of asynq.Client the job client needs
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}

// Client handles enqueueing background jobs
type Client struct {
	client Enqueuer
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return NewClientWith(asynq.NewClient(redisOpt), logger)
}

// NewClientWith wraps an existing enqueuer
func NewClientWith(client Enqueuer, logger *observability.Logger) *Client {
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueCampaignDispatch hands a campaign to the sender. A non-nil processAt
// delays the task until that time; queueing the same campaign for the same time
// twice is a no-op.
func (c *Client) EnqueueCampaignDispatch(ctx context.Context, campaignID uuid.UUID, tenantID *uuid.UUID, processAt *time.Time) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	var opts []asynq.Option
	if processAt != nil {
		opts = append(opts,
			asynq.ProcessAt(*processAt),
			asynq.TaskID(CampaignDispatchTaskID(campaignID, *processAt)),
		)
	}

	task, err := NewCampaignDispatchTask(CampaignDispatchPayload{
		CampaignID:   campaignID,
		TenantID:     tenantID,
		ScheduledFor: processAt,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to create campaign dispatch task", err)
		return fmt.Errorf("failed to create campaign dispatch task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		c.logger.Info(ctx, "campaign dispatch already scheduled for this time")
		return nil
	}
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue campaign dispatch task", err)
		return fmt.Errorf("failed to enqueue campaign dispatch task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued campaign dispatch task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
