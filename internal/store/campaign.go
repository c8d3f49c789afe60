package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	TenantID         *uuid.UUID
	Name             string
	TargetTags       RawJSON
	SessionNames     RawJSON
	MessageType      string
	MessageContent   RawJSON
	RandomDelay      int
	StartImmediately bool
	ScheduledFor     *time.Time
	Status           string
	StartedAt        *time.Time
	CreatedBy        *uuid.UUID
	CreatedByName    *string
}

// PlannedMessage is the contact snapshot of one message to create with a campaign.
// session_name stays NULL until the sender picks a session for the message.
type PlannedMessage struct {
	ContactID    uuid.UUID
	ContactName  string
	ContactPhone string
}

// UpdateCampaignParams represents the mutable part of a campaign
type UpdateCampaignParams struct {
	Name           string
	MessageType    string
	MessageContent RawJSON
	RandomDelay    int
	ScheduledFor   *time.Time
}

// ListCampaignsParams filters and paginates campaigns
type ListCampaignsParams struct {
	TenantID *uuid.UUID
	Search   string
	Limit    int
	Offset   int
}

const campaignColumns = `id, tenant_id, name, target_tags, session_names, message_type, message_content,
    random_delay, start_immediately, scheduled_for, total_contacts, status, started_at, completed_at,
    created_by, created_by_name, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (tenant_id, name, target_tags, session_names, message_type, message_content,
    random_delay, start_immediately, scheduled_for, total_contacts, status, started_at, created_by, created_by_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + campaignColumns

// clock_timestamp keeps the insertion order visible inside one transaction.
const sqlCreateCampaignMessage = `
INSERT INTO campaign_messages (campaign_id, contact_id, contact_name, contact_phone, status, tenant_id, created_at)
VALUES ($1, $2, $3, $4, 'PENDING', $5, clock_timestamp())
`

// CreateCampaignWithMessages inserts a campaign and one PENDING message per planned message
// in a single transaction. TotalContacts is the number of messages inserted.
func (s *Store) CreateCampaignWithMessages(ctx context.Context, params CreateCampaignParams, messages []PlannedMessage) (Campaign, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var campaign Campaign
	err = tx.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.TenantID,
		params.Name,
		params.TargetTags,
		params.SessionNames,
		params.MessageType,
		params.MessageContent,
		params.RandomDelay,
		params.StartImmediately,
		params.ScheduledFor,
		len(messages),
		params.Status,
		params.StartedAt,
		params.CreatedBy,
		params.CreatedByName)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, sqlCreateCampaignMessage)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, msg := range messages {
		_, err := stmt.ExecContext(ctx, campaign.ID, msg.ContactID, msg.ContactName, msg.ContactPhone, params.TenantID)
		if err != nil {
			s.logger.Error(ctx, "failed to insert campaign message", err)
			return Campaign{}, fmt.Errorf("failed to insert campaign message: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Campaign{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// GetCampaignByID retrieves a campaign within the tenant filter
func (s *Store) GetCampaignByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, id, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT c.id, c.tenant_id, c.name, c.target_tags, c.session_names, c.message_type, c.message_content,
    c.random_delay, c.start_immediately, c.scheduled_for, c.total_contacts, c.status, c.started_at,
    c.completed_at, c.created_by, c.created_by_name, c.created_at, c.updated_at,
    (SELECT COUNT(*) FROM campaign_messages m WHERE m.campaign_id = c.id) AS message_count
FROM campaigns c
WHERE ($1::uuid IS NULL OR c.tenant_id = $1)
  AND ($2 = '' OR c.name ILIKE '%' || $2 || '%')
ORDER BY c.created_at DESC
LIMIT $3 OFFSET $4
`

const sqlCountCampaigns = `
SELECT COUNT(*)
FROM campaigns
WHERE ($1::uuid IS NULL OR tenant_id = $1)
  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
`

// ListCampaigns retrieves a page of campaigns with their message counts
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]CampaignWithCount, int, error) {
	campaigns := []CampaignWithCount{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, params.TenantID, params.Search, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountCampaigns, params.TenantID, params.Search)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return campaigns, total, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = $3, message_type = $4, message_content = $5, random_delay = $6, scheduled_for = $7, updated_at = NOW()
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
RETURNING ` + campaignColumns

// UpdateCampaign updates the mutable fields of a campaign. Targets are not touched.
func (s *Store) UpdateCampaign(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		id,
		tenantID,
		params.Name,
		params.MessageType,
		params.MessageContent,
		params.RandomDelay,
		params.ScheduledFor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlUpdateCampaignStatus = `
UPDATE campaigns
SET status = $3,
    started_at = CASE WHEN $3 = 'RUNNING' THEN COALESCE(started_at, NOW()) ELSE started_at END,
    updated_at = NOW()
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
RETURNING ` + campaignColumns

// UpdateCampaignStatus sets the campaign status. Moving to RUNNING stamps started_at
// unless it is already set.
func (s *Store) UpdateCampaignStatus(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, status string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaignStatus, id, tenantID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign status", err)
		return Campaign{}, fmt.Errorf("failed to update campaign status: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `
DELETE FROM campaigns
WHERE id = $1 AND ($2::uuid IS NULL OR tenant_id = $2)
`

// DeleteCampaign removes a campaign and, through the foreign key, its messages
func (s *Store) DeleteCampaign(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCampaign, id, tenantID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlListCampaignMessages = `
SELECT id, campaign_id, contact_id, contact_name, contact_phone, session_name, status, sent_at,
    error_message, selected_variation, tenant_id, created_at
FROM campaign_messages
WHERE campaign_id = $1
ORDER BY created_at ASC, id ASC
`

// ListCampaignMessages returns every message of a campaign in creation order
func (s *Store) ListCampaignMessages(ctx context.Context, campaignID uuid.UUID) ([]CampaignMessage, error) {
	messages := []CampaignMessage{}
	err := s.db.SelectContext(ctx, &messages, sqlListCampaignMessages, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign messages", err)
		return nil, fmt.Errorf("failed to list campaign messages: %w", err)
	}
	return messages, nil
}

const sqlCountCampaignMessages = `
SELECT COUNT(*) FROM campaign_messages WHERE campaign_id = $1
`

// CountCampaignMessages returns the number of messages planned for a campaign
func (s *Store) CountCampaignMessages(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaignMessages, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaign messages", err)
		return 0, fmt.Errorf("failed to count campaign messages: %w", err)
	}
	return count, nil
}
