package scheduler

import (
	"context"
	"fmt"

	"campaign-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Job represents a periodic task
type Job interface {
	// Name returns the job name for logging
	Name() string
	// Task builds the task enqueued on every tick
	Task() *asynq.Task
	// Schedule returns the cron spec or "@every <duration>" interval
	Schedule() string
}

// Registrar is the part of asynq.Scheduler used to register periodic tasks
type Registrar interface {
	Register(cronspec string, task *asynq.Task, opts ...asynq.Option) (string, error)
}

// Scheduler registers periodic jobs with the asynq scheduler
type Scheduler struct {
	registrar Registrar
	entries   map[string]string
	logger    *observability.Logger
}

// New creates a new scheduler
func New(registrar Registrar, logger *observability.Logger) *Scheduler {
	return &Scheduler{
		registrar: registrar,
		entries:   make(map[string]string),
		logger:    logger,
	}
}

// Register adds a job to the scheduler
func (s *Scheduler) Register(job Job) error {
	ctx := observability.WithFields(context.Background(), observability.Field{Key: "scheduled_job", Value: job.Name()})

	entryID, err := s.registrar.Register(job.Schedule(), job.Task())
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("failed to register scheduled job: %s", job.Name()), err)
		return fmt.Errorf("failed to register %s: %w", job.Name(), err)
	}

	s.entries[job.Name()] = entryID
	s.logger.Info(ctx, fmt.Sprintf("Registered scheduled job: %s (schedule: %s)", job.Name(), job.Schedule()))
	return nil
}

// Entries returns the asynq entry id of every registered job, keyed by job name
func (s *Scheduler) Entries() map[string]string {
	entries := make(map[string]string, len(s.entries))
	for name, id := range s.entries {
		entries[name] = id
	}
	return entries
}
