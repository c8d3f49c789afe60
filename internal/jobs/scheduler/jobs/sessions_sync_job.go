package jobs

import (
	"campaign-server/internal/jobs"

	"github.com/hibiken/asynq"
)

// SessionsSyncJob reconciles every session with its provider on a fixed interval
type SessionsSyncJob struct {
	interval string
}

// NewSessionsSyncJob creates a new sessions sync job
func NewSessionsSyncJob(interval string) *SessionsSyncJob {
	if interval == "" {
		interval = "@every 1m"
	}
	return &SessionsSyncJob{interval: interval}
}

// Name returns the job name
func (j *SessionsSyncJob) Name() string {
	return "sessions-sync"
}

// Task returns the sessions sync task
func (j *SessionsSyncJob) Task() *asynq.Task {
	return jobs.NewSessionsSyncTask()
}

// Schedule returns the job interval
func (j *SessionsSyncJob) Schedule() string {
	return j.interval
}
