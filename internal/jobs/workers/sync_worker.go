package workers

import (
	"context"
	"fmt"

	"campaign-server/internal/observability"
	sessions "campaign-server/internal/sessions/processor"
	"campaign-server/internal/tenancy"

	"github.com/hibiken/asynq"
)

// SessionSyncer reconciles persisted sessions with their providers
type SessionSyncer interface {
	SyncAll(ctx context.Context, scope tenancy.Scope) (sessions.SyncResult, error)
}

// SyncWorker runs the periodic session reconciliation across all tenants
type SyncWorker struct {
	syncer SessionSyncer
	logger *observability.Logger
}

// NewSyncWorker creates a new sync worker
func NewSyncWorker(syncer SessionSyncer, logger *observability.Logger) *SyncWorker {
	return &SyncWorker{
		syncer: syncer,
		logger: logger,
	}
}

// ProcessSessionsSyncTask processes a sessions sync task
func (w *SyncWorker) ProcessSessionsSyncTask(ctx context.Context, _ *asynq.Task) error {
	result, err := w.syncer.SyncAll(ctx, tenancy.Scope{Role: tenancy.RoleSuperAdmin})
	if err != nil {
		w.logger.Error(ctx, "session sync failed", err)
		return fmt.Errorf("failed to sync sessions: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "checked", Value: result.Checked},
		observability.Field{Key: "updated", Value: result.Updated},
		observability.Field{Key: "failed", Value: result.Failed},
	)
	w.logger.Info(ctx, "session sync completed")
	return nil
}
