package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campaign-server/internal/jobs"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

//go:generate mockgen -source=dispatch_worker.go -destination=mocks_test.go -package=workers

// CampaignStore is the campaign persistence the dispatch worker reads and updates
type CampaignStore interface {
	GetCampaignByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, status string) (store.Campaign, error)
	CountCampaignMessages(ctx context.Context, campaignID uuid.UUID) (int, error)
}

// DispatchQueue queues the start of a rescheduled campaign
type DispatchQueue interface {
	EnqueueCampaignDispatch(ctx context.Context, campaignID uuid.UUID, tenantID *uuid.UUID, processAt *time.Time) error
}

// DispatchWorker receives planned campaigns at the boundary of the sending
// engine. It starts scheduled campaigns that are due and acknowledges the
// handoff; sending itself happens elsewhere.
type DispatchWorker struct {
	store  CampaignStore
	queue  DispatchQueue
	logger *observability.Logger
	now    func() time.Time
}

// NewDispatchWorker creates a new dispatch worker
func NewDispatchWorker(store CampaignStore, queue DispatchQueue, logger *observability.Logger) *DispatchWorker {
	return &DispatchWorker{
		store:  store,
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

// ProcessCampaignDispatchTask processes a campaign dispatch task
func (w *DispatchWorker) ProcessCampaignDispatchTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.CampaignDispatchPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal campaign dispatch payload", err)
		return fmt.Errorf("failed to unmarshal campaign dispatch payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()})

	campaign, err := w.store.GetCampaignByID(ctx, payload.CampaignID, payload.TenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.logger.Warn(ctx, "campaign deleted before dispatch, dropping task")
			return nil
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}

	switch campaign.Status {
	case store.CampaignStatusRunning:
		// A start queued for a later time than the campaign actually started
		// was overtaken by a reschedule or a manual resume.
		if payload.ScheduledFor != nil && campaign.StartedAt != nil && campaign.StartedAt.Before(*payload.ScheduledFor) {
			w.logger.Info(ctx, "campaign already started, dropping stale scheduled start")
			return nil
		}
	case store.CampaignStatusPending:
		if campaign.ScheduledFor != nil && campaign.ScheduledFor.After(w.now()) {
			return w.requeue(ctx, campaign, payload)
		}
		campaign, err = w.store.UpdateCampaignStatus(ctx, campaign.ID, payload.TenantID, store.CampaignStatusRunning)
		if err != nil {
			return fmt.Errorf("failed to start scheduled campaign: %w", err)
		}
	default:
		w.logger.Info(ctx, fmt.Sprintf("campaign is %s, skipping dispatch", campaign.Status))
		return nil
	}

	count, err := w.store.CountCampaignMessages(ctx, campaign.ID)
	if err != nil {
		return fmt.Errorf("failed to count campaign messages: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "messages", Value: count},
		observability.Field{Key: "random_delay", Value: campaign.RandomDelay},
	)
	w.logger.Info(ctx, "campaign handed off to sender")
	return nil
}

// requeue handles a start that arrived before the campaign is due. A task queued
// for an older schedule is replaced by one for the current schedule; a task for
// the current schedule arrived early and is retried.
func (w *DispatchWorker) requeue(ctx context.Context, campaign store.Campaign, payload jobs.CampaignDispatchPayload) error {
	scheduledFor := *campaign.ScheduledFor
	ctx = observability.WithFields(ctx, observability.Field{Key: "scheduled_for", Value: scheduledFor})

	if payload.ScheduledFor != nil && payload.ScheduledFor.Equal(scheduledFor) {
		return fmt.Errorf("campaign not due until %s", scheduledFor.Format(time.RFC3339))
	}

	if err := w.queue.EnqueueCampaignDispatch(ctx, campaign.ID, payload.TenantID, &scheduledFor); err != nil {
		return fmt.Errorf("failed to requeue rescheduled campaign: %w", err)
	}
	w.logger.Info(ctx, "campaign was rescheduled, start queued for the new time")
	return nil
}
