package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"campaign-server/internal/campaign/content"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/google/uuid"
)

// NoSession labels messages that were never assigned a sending session
const NoSession = "N/A"

// Stats partitions the messages of a campaign by delivery status
type Stats struct {
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

// ReportMessage is a campaign message with the provider of its session resolved
type ReportMessage struct {
	store.CampaignMessage
	SessionProvider    string `json:"session_provider"`
	SessionDisplayName string `json:"session_display_name"`
}

type MessagesByStatus struct {
	Sent    []ReportMessage `json:"sent"`
	Failed  []ReportMessage `json:"failed"`
	Pending []ReportMessage `json:"pending"`
}

type SessionGroup struct {
	SessionName string          `json:"session_name"`
	Provider    string          `json:"provider"`
	MePushName  *string         `json:"me_push_name"`
	Status      *string         `json:"status"`
	Messages    []ReportMessage `json:"messages"`
}

type SessionInfo struct {
	Provider   string  `json:"provider"`
	MePushName *string `json:"me_push_name"`
	Status     string  `json:"status"`
}

// Report is the delivery report of one campaign
type Report struct {
	Campaign          CampaignDetail           `json:"campaign"`
	Stats             Stats                    `json:"stats"`
	MessagesByStatus  MessagesByStatus         `json:"messages_by_status"`
	MessagesBySession map[string]*SessionGroup `json:"messages_by_session"`
	SessionsInfo      map[string]SessionInfo   `json:"sessions_info"`
	Completed         bool                     `json:"completed"`
	GeneratedAt       string                   `json:"generated_at"`
}

// BuildReport folds the messages of a campaign into status counts and per-session groups.
// It has no side effects, and malformed stored JSON degrades to an empty value.
func (p *CampaignProcessor) BuildReport(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (Report, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})

	campaign, err := p.getCampaign(ctx, scope, id)
	if err != nil {
		return Report{}, err
	}

	messages, err := p.store.ListCampaignMessages(ctx, campaign.ID)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list campaign messages: %w", err)
	}

	sessionsInfo := p.sessionsInfo(ctx, messages)

	report := Report{
		Campaign:          p.detail(ctx, campaign),
		MessagesByStatus:  MessagesByStatus{Sent: []ReportMessage{}, Failed: []ReportMessage{}, Pending: []ReportMessage{}},
		MessagesBySession: map[string]*SessionGroup{},
		SessionsInfo:      sessionsInfo,
		GeneratedAt:       p.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}

	for _, msg := range messages {
		rm := withProvider(msg, sessionsInfo)
		report.Stats.Total++

		switch msg.Status {
		case store.MessageStatusSent:
			report.Stats.Sent++
			report.MessagesByStatus.Sent = append(report.MessagesByStatus.Sent, rm)
		case store.MessageStatusFailed:
			report.Stats.Failed++
			report.MessagesByStatus.Failed = append(report.MessagesByStatus.Failed, rm)
		default:
			report.Stats.Pending++
			report.MessagesByStatus.Pending = append(report.MessagesByStatus.Pending, rm)
		}

		group, ok := report.MessagesBySession[rm.SessionDisplayName]
		if !ok {
			group = newSessionGroup(msg.SessionName, sessionsInfo)
			report.MessagesBySession[rm.SessionDisplayName] = group
		}
		group.Messages = append(group.Messages, rm)
	}

	report.Completed = report.Stats.Total > 0 && report.Stats.Pending == 0
	report.Campaign.Messages = nil

	return report, nil
}

// sessionsInfo looks up the sessions referenced by messages. A failed lookup leaves every
// session on the default provider rather than failing the report.
func (p *CampaignProcessor) sessionsInfo(ctx context.Context, messages []store.CampaignMessage) map[string]SessionInfo {
	info := map[string]SessionInfo{}

	names := make([]string, 0)
	seen := map[string]bool{}
	for _, msg := range messages {
		if msg.SessionName == nil || *msg.SessionName == "" || seen[*msg.SessionName] {
			continue
		}
		seen[*msg.SessionName] = true
		names = append(names, *msg.SessionName)
	}
	if len(names) == 0 {
		return info
	}

	sessions, err := p.store.GetSessionsByNames(ctx, names)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to load report sessions", err)
		return info
	}

	for _, s := range sessions {
		provider := s.Provider
		if provider == "" {
			provider = store.ProviderWaha
		}
		info[s.Name] = SessionInfo{Provider: provider, MePushName: s.MePushName, Status: s.Status}
	}
	return info
}

func withProvider(msg store.CampaignMessage, info map[string]SessionInfo) ReportMessage {
	if msg.SessionName == nil || *msg.SessionName == "" {
		return ReportMessage{CampaignMessage: msg, SessionProvider: NoSession, SessionDisplayName: NoSession}
	}

	provider := store.ProviderWaha
	if s, ok := info[*msg.SessionName]; ok {
		provider = s.Provider
	}
	return ReportMessage{
		CampaignMessage:    msg,
		SessionProvider:    provider,
		SessionDisplayName: fmt.Sprintf("%s (%s)", *msg.SessionName, provider),
	}
}

func newSessionGroup(sessionName *string, info map[string]SessionInfo) *SessionGroup {
	if sessionName == nil || *sessionName == "" {
		return &SessionGroup{SessionName: NoSession, Provider: NoSession}
	}

	group := &SessionGroup{SessionName: *sessionName, Provider: store.ProviderWaha}
	if s, ok := info[*sessionName]; ok {
		status := s.Status
		group.Provider = s.Provider
		group.MePushName = s.MePushName
		group.Status = &status
	}
	return group
}

// detail decodes the JSON columns of a campaign leniently
func (p *CampaignProcessor) detail(ctx context.Context, campaign store.Campaign) CampaignDetail {
	detail := CampaignDetail{Campaign: campaign}

	var ok bool
	if detail.TargetTags, ok = decodeStringList(campaign.TargetTags); !ok {
		p.logger.Warn(ctx, "malformed campaign target_tags, using []")
	}
	if detail.SessionNames, ok = decodeStringList(campaign.SessionNames); !ok {
		p.logger.Warn(ctx, "malformed campaign session_names, using []")
	}
	if detail.MessageContent, ok = content.DecodeLenient(campaign.MessageContent); !ok {
		p.logger.Warn(ctx, "malformed campaign message_content, using {}")
	}
	return detail
}

// decodeStringList returns an empty list for a missing value and reports false when raw is malformed
func decodeStringList(raw []byte) ([]string, bool) {
	if len(raw) == 0 {
		return []string{}, true
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}, false
	}
	if values == nil {
		values = []string{}
	}
	return values, true
}
