package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"campaign-server/internal/campaign/content"
	"campaign-server/internal/clients/llm"
	"campaign-server/internal/events"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaignWithMessages(ctx context.Context, params store.CreateCampaignParams, messages []store.PlannedMessage) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) ([]store.CampaignWithCount, int, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, status string) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
	ListCampaignMessages(ctx context.Context, campaignID uuid.UUID) ([]store.CampaignMessage, error)

	ListWorkingSessions(ctx context.Context, tenantID *uuid.UUID) ([]store.WhatsAppSession, error)
	GetWorkingSessionsByNames(ctx context.Context, names []string, tenantID *uuid.UUID) ([]store.WhatsAppSession, error)
	GetSessionsByNames(ctx context.Context, names []string) ([]store.WhatsAppSession, error)
}

// SegmentResolver selects the contacts a campaign targets
type SegmentResolver interface {
	ResolveSegment(ctx context.Context, tenantID uuid.UUID, categoryIDs []uuid.UUID) ([]store.Contact, error)
	ListContactTags(ctx context.Context, scope tenancy.Scope) ([]store.Category, error)
}

// DispatchQueue hands a campaign over to the sending worker. A nil processAt means now.
type DispatchQueue interface {
	EnqueueCampaignDispatch(ctx context.Context, campaignID uuid.UUID, tenantID *uuid.UUID, processAt *time.Time) error
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, tenantID *uuid.UUID, data map[string]interface{})
}

// AIKeySource resolves the tenant's API key for an AI message type
type AIKeySource interface {
	AIKey(ctx context.Context, tenantID uuid.UUID, messageType string) (string, error)
}

// Completer generates text from a prompt
type Completer interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

var (
	ErrCampaignNotFound          = errors.New("campaign not found")
	ErrNoActiveSessions          = errors.New("none of the selected sessions is active")
	ErrPartiallyInactiveSessions = errors.New("some of the selected sessions are not active")
	ErrInvalidAction             = errors.New("invalid campaign action")
	ErrInvalidMessageContent     = errors.New("invalid message content")
	ErrNotAIContent              = errors.New("message type does not generate content")
)

// InactiveSessionsError names the requested sessions that are missing, out of scope or not WORKING.
// It matches ErrNoActiveSessions when none of the requested sessions qualified.
type InactiveSessionsError struct {
	Names []string
	None  bool
}

func (e *InactiveSessionsError) Error() string {
	if e.None {
		return fmt.Sprintf("%s: %s", ErrNoActiveSessions, strings.Join(e.Names, ", "))
	}
	return fmt.Sprintf("%s: %s", ErrPartiallyInactiveSessions, strings.Join(e.Names, ", "))
}

func (e *InactiveSessionsError) Is(target error) bool {
	if e.None {
		return target == ErrNoActiveSessions
	}
	return target == ErrPartiallyInactiveSessions
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, *uuid.UUID, map[string]interface{}) {}

// Toggle actions
const (
	ActionPause  = "pause"
	ActionResume = "resume"
)

type CampaignProcessor struct {
	store     CampaignStore
	segments  SegmentResolver
	dispatch  DispatchQueue
	events    EventPublisher
	aiKeys    AIKeySource
	completer Completer
	logger    *observability.Logger
	now       func() time.Time
}

func New(
	store CampaignStore,
	segments SegmentResolver,
	dispatch DispatchQueue,
	events EventPublisher,
	aiKeys AIKeySource,
	completer Completer,
	logger *observability.Logger,
) CampaignProcessor {
	if events == nil {
		events = noopPublisher{}
	}
	return CampaignProcessor{
		store:     store,
		segments:  segments,
		dispatch:  dispatch,
		events:    events,
		aiKeys:    aiKeys,
		completer: completer,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateCampaignParams represents a campaign definition
type CreateCampaignParams struct {
	Name             string
	CategoryIDs      []uuid.UUID
	SessionNames     []string
	MessageType      string
	MessageContent   json.RawMessage
	RandomDelay      int
	StartImmediately bool
	ScheduledFor     *time.Time
}

// UpdateCampaignParams represents the editable part of a campaign
type UpdateCampaignParams struct {
	Name           string
	MessageType    string
	MessageContent json.RawMessage
	RandomDelay    int
	ScheduledFor   *time.Time
}

// CampaignDetail is a campaign with its JSON columns decoded
type CampaignDetail struct {
	store.Campaign
	TargetTags     []string                `json:"target_tags"`
	SessionNames   []string                `json:"session_names"`
	MessageContent json.RawMessage         `json:"message_content"`
	Messages       []store.CampaignMessage `json:"messages,omitempty"`
}

// CampaignPage is a paginated campaign list
type CampaignPage struct {
	Campaigns  []store.CampaignWithCount `json:"campaigns"`
	TotalCount int                       `json:"total_count"`
	Page       int                       `json:"page"`
	PageSize   int                       `json:"page_size"`
	TotalPages int                       `json:"total_pages"`
}

// CreateCampaign validates a definition and materializes one PENDING message per eligible contact.
// Session validation gates segment resolution, which gates the write.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, scope tenancy.Scope, params CreateCampaignParams) (store.Campaign, error) {
	tenantID, err := scope.RequireTenant()
	if err != nil {
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tenant_id", Value: tenantID.String()},
		observability.Field{Key: "message_type", Value: params.MessageType},
	)

	decoded, err := content.Decode(params.MessageType, params.MessageContent)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidMessageContent, err)
	}
	encodedContent, err := content.Encode(decoded)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidMessageContent, err)
	}

	sessionNames := uniqueStrings(params.SessionNames)
	if err := p.checkSessions(ctx, scope, sessionNames); err != nil {
		return store.Campaign{}, err
	}

	categoryIDs := uniqueIDs(params.CategoryIDs)
	contacts, err := p.segments.ResolveSegment(ctx, tenantID, categoryIDs)
	if err != nil {
		return store.Campaign{}, err
	}

	targetTags, err := json.Marshal(idStrings(categoryIDs))
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to encode target tags: %w", err)
	}
	sessionsJSON, err := json.Marshal(sessionNames)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to encode session names: %w", err)
	}

	status := store.CampaignStatusPending
	var startedAt *time.Time
	if params.StartImmediately {
		now := p.now().UTC()
		status = store.CampaignStatusRunning
		startedAt = &now
	}

	var createdByName *string
	if scope.UserName != "" {
		name := scope.UserName
		createdByName = &name
	}

	messages := make([]store.PlannedMessage, 0, len(contacts))
	for _, contact := range contacts {
		messages = append(messages, store.PlannedMessage{
			ContactID:    contact.ID,
			ContactName:  contact.Name,
			ContactPhone: contact.Phone,
		})
	}

	campaign, err := p.store.CreateCampaignWithMessages(ctx, store.CreateCampaignParams{
		TenantID:         &tenantID,
		Name:             strings.TrimSpace(params.Name),
		TargetTags:       targetTags,
		SessionNames:     sessionsJSON,
		MessageType:      params.MessageType,
		MessageContent:   encodedContent,
		RandomDelay:      params.RandomDelay,
		StartImmediately: params.StartImmediately,
		ScheduledFor:     params.ScheduledFor,
		Status:           status,
		StartedAt:        startedAt,
		CreatedBy:        scope.UserID,
		CreatedByName:    createdByName,
	}, messages)
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
		observability.Field{Key: "total_contacts", Value: campaign.TotalContacts},
	)
	observability.ObserveCampaignCreated(campaign.Status)

	p.enqueueIfDue(ctx, campaign)
	p.events.Publish(ctx, events.CampaignCreated, campaign.TenantID, map[string]interface{}{
		"campaign_id":    campaign.ID.String(),
		"name":           campaign.Name,
		"status":         campaign.Status,
		"total_contacts": campaign.TotalContacts,
		"message_type":   campaign.MessageType,
	})

	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// checkSessions requires every named session to exist in scope with status WORKING
func (p *CampaignProcessor) checkSessions(ctx context.Context, scope tenancy.Scope, names []string) error {
	if len(names) == 0 {
		return &InactiveSessionsError{None: true}
	}

	active, err := p.store.GetWorkingSessionsByNames(ctx, names, scope.Filter())
	if err != nil {
		return fmt.Errorf("failed to check sessions: %w", err)
	}

	working := make(map[string]bool, len(active))
	for _, s := range active {
		working[s.Name] = true
	}

	var inactive []string
	for _, name := range names {
		if !working[name] {
			inactive = append(inactive, name)
		}
	}

	switch {
	case len(inactive) == 0:
		return nil
	case len(inactive) == len(names):
		return &InactiveSessionsError{Names: inactive, None: true}
	default:
		return &InactiveSessionsError{Names: inactive}
	}
}

// enqueueIfDue hands a RUNNING campaign to the worker now and a scheduled one at its start time
func (p *CampaignProcessor) enqueueIfDue(ctx context.Context, campaign store.Campaign) {
	if p.dispatch == nil {
		return
	}

	var processAt *time.Time
	switch {
	case campaign.Status == store.CampaignStatusRunning:
	case campaign.Status == store.CampaignStatusPending && campaign.ScheduledFor != nil:
		if campaign.ScheduledFor.After(p.now()) {
			processAt = campaign.ScheduledFor
		}
	default:
		return
	}

	if err := p.dispatch.EnqueueCampaignDispatch(ctx, campaign.ID, campaign.TenantID, processAt); err != nil {
		p.logger.WarnWithError(ctx, "failed to enqueue campaign dispatch", err)
	}
}

// ToggleCampaign pauses or resumes a campaign. The first resume stamps started_at.
func (p *CampaignProcessor) ToggleCampaign(ctx context.Context, scope tenancy.Scope, id uuid.UUID, action string) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: id.String()},
		observability.Field{Key: "action", Value: action},
	)

	var status, eventType string
	switch action {
	case ActionPause:
		status, eventType = store.CampaignStatusPaused, events.CampaignPaused
	case ActionResume:
		status, eventType = store.CampaignStatusRunning, events.CampaignResumed
	default:
		return store.Campaign{}, ErrInvalidAction
	}

	campaign, err := p.store.UpdateCampaignStatus(ctx, id, scope.Filter(), status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to toggle campaign: %w", err)
	}

	if campaign.Status == store.CampaignStatusRunning {
		p.enqueueIfDue(ctx, campaign)
	}
	p.events.Publish(ctx, eventType, campaign.TenantID, map[string]interface{}{
		"campaign_id": campaign.ID.String(),
		"status":      campaign.Status,
	})

	p.logger.Info(ctx, "campaign toggled")
	return campaign, nil
}

// ListCampaigns returns a page of campaigns with their message counts
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, scope tenancy.Scope, search string, page, limit int) (CampaignPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	campaigns, total, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{
		TenantID: scope.Filter(),
		Search:   strings.TrimSpace(search),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return CampaignPage{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []store.CampaignWithCount{}
	}

	return CampaignPage{
		Campaigns:  campaigns,
		TotalCount: total,
		Page:       page,
		PageSize:   limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// GetCampaign returns a campaign with its messages
func (p *CampaignProcessor) GetCampaign(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (CampaignDetail, error) {
	campaign, err := p.getCampaign(ctx, scope, id)
	if err != nil {
		return CampaignDetail{}, err
	}

	messages, err := p.store.ListCampaignMessages(ctx, campaign.ID)
	if err != nil {
		return CampaignDetail{}, fmt.Errorf("failed to list campaign messages: %w", err)
	}

	detail := p.detail(ctx, campaign)
	detail.Messages = messages
	return detail, nil
}

func (p *CampaignProcessor) getCampaign(ctx context.Context, scope tenancy.Scope, id uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, id, scope.Filter())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

// UpdateCampaign edits name, schedule, delay and content. Targets stay as planned.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, scope tenancy.Scope, id uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})

	decoded, err := content.Decode(params.MessageType, params.MessageContent)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidMessageContent, err)
	}
	encodedContent, err := content.Encode(decoded)
	if err != nil {
		return store.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidMessageContent, err)
	}

	campaign, err := p.store.UpdateCampaign(ctx, id, scope.Filter(), store.UpdateCampaignParams{
		Name:           strings.TrimSpace(params.Name),
		MessageType:    params.MessageType,
		MessageContent: encodedContent,
		RandomDelay:    params.RandomDelay,
		ScheduledFor:   params.ScheduledFor,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}

	p.logger.Info(ctx, "campaign updated")

	// A RUNNING campaign was already handed off; only a pending one follows its new schedule.
	if campaign.Status == store.CampaignStatusPending {
		p.enqueueIfDue(ctx, campaign)
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign and its messages
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, scope tenancy.Scope, id uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: id.String()})

	if err := p.store.DeleteCampaign(ctx, id, scope.Filter()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	tenantID := scope.Owner()
	p.events.Publish(ctx, events.CampaignDeleted, tenantID, map[string]interface{}{
		"campaign_id": id.String(),
	})

	p.logger.Info(ctx, "campaign deleted")
	return nil
}

// ListActiveSessions returns the WORKING sessions a campaign may send through
func (p *CampaignProcessor) ListActiveSessions(ctx context.Context, scope tenancy.Scope) ([]store.WhatsAppSession, error) {
	sessions, err := p.store.ListWorkingSessions(ctx, scope.Filter())
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return sessions, nil
}

// ListContactTags returns the categories a campaign may target
func (p *CampaignProcessor) ListContactTags(ctx context.Context, scope tenancy.Scope) ([]store.Category, error) {
	return p.segments.ListContactTags(ctx, scope)
}

// PreviewAIContent runs an openai or groq prompt with the tenant's key and returns the text.
// Nothing is stored.
func (p *CampaignProcessor) PreviewAIContent(ctx context.Context, scope tenancy.Scope, messageType string, raw json.RawMessage) (string, error) {
	if !content.IsAIType(messageType) {
		return "", ErrNotAIContent
	}

	decoded, err := content.Decode(messageType, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMessageContent, err)
	}
	prompt, ok := decoded.(content.AIPrompt)
	if !ok {
		return "", ErrInvalidMessageContent
	}

	apiKey, err := p.aiKeys.AIKey(ctx, scope.TenantID, messageType)
	if err != nil {
		return "", err
	}

	text, err := p.completer.Complete(ctx, llm.CompletionRequest{
		Kind:         messageType,
		APIKey:       apiKey,
		Model:        prompt.Model,
		SystemPrompt: prompt.SystemPrompt,
		Prompt:       prompt.Prompt,
		Temperature:  prompt.Temperature,
		MaxTokens:    prompt.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return text, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	sort.Strings(out)
	return out
}
