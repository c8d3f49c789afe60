package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	// High priority queue
	TypeCampaignDispatch = "campaign:dispatch"

	// Low priority queue
	TypeSessionsSync = "sessions:sync"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Queues maps each queue to its asynq priority weight
var Queues = map[string]int{
	QueueHigh:   6,
	QueueMedium: 3,
	QueueLow:    1,
}

// CampaignDispatchPayload hands a planned campaign over to the sender.
// ScheduledFor is the start time the task was queued for; it is empty for
// campaigns dispatched right away.
type CampaignDispatchPayload struct {
	CampaignID   uuid.UUID  `json:"campaign_id"`
	TenantID     *uuid.UUID `json:"tenant_id,omitempty"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// CampaignDispatchTaskID identifies the scheduled start of a campaign at one time,
// so a start is queued at most once per schedule
func CampaignDispatchTaskID(campaignID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("%s:%s:%d", TypeCampaignDispatch, campaignID, at.Unix())
}

// NewCampaignDispatchTask creates a new campaign dispatch task
func NewCampaignDispatchTask(payload CampaignDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCampaignDispatch, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}

// NewSessionsSyncTask creates the periodic session reconciliation task. It has no
// payload: every run covers all tenants.
func NewSessionsSyncTask() *asynq.Task {
	return asynq.NewTask(TypeSessionsSync, nil, asynq.Queue(QueueLow), asynq.MaxRetry(0))
}
