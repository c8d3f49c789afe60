package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RawJSON holds a JSON document stored in a text column. It is kept as bytes
// so that read paths can decide how to recover from a malformed value.
type RawJSON []byte

// Value implements the driver.Valuer interface for RawJSON
func (j RawJSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements the sql.Scanner interface for RawJSON
func (j *RawJSON) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append(RawJSON(nil), v...)
	case string:
		*j = RawJSON(v)
	default:
		return errors.New("incompatible type for RawJSON")
	}
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	quoted := make([]string, len(a))
	for i, item := range a {
		item = strings.ReplaceAll(item, `\`, `\\`)
		item = strings.ReplaceAll(item, `"`, `\"`)
		quoted[i] = `"` + item + `"`
	}
	// PostgreSQL array format: {"item1","item2"}
	return "{" + strings.Join(quoted, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	str = strings.TrimSpace(str)
	if len(str) < 2 || str[0] != '{' || str[len(str)-1] != '}' {
		return fmt.Errorf("malformed array literal: %q", str)
	}
	body := str[1 : len(str)-1]

	result := []string{}
	if body == "" {
		*a = result
		return nil
	}

	var current strings.Builder
	inQuotes, escaped, wasQuoted := false, false, false
	for _, r := range body {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
			wasQuoted = true
		case r == ',' && !inQuotes:
			result = append(result, unquotedItem(current.String(), wasQuoted))
			current.Reset()
			wasQuoted = false
		default:
			current.WriteRune(r)
		}
	}
	result = append(result, unquotedItem(current.String(), wasQuoted))

	*a = result
	return nil
}

func unquotedItem(item string, wasQuoted bool) string {
	if wasQuoted {
		return item
	}
	return strings.TrimSpace(item)
}

// Tenant is the isolation boundary every scoped entity belongs to
type Tenant struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Slug           string    `db:"slug" json:"slug"`
	Name           string    `db:"name" json:"name"`
	Active         bool      `db:"active" json:"active"`
	MaxUsers       int       `db:"max_users" json:"max_users"`
	MaxContacts    int       `db:"max_contacts" json:"max_contacts"`
	MaxCampaigns   int       `db:"max_campaigns" json:"max_campaigns"`
	MaxConnections int       `db:"max_connections" json:"max_connections"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// WhatsAppSession is one connection to a gateway provider account
type WhatsAppSession struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	DisplayName *string    `db:"display_name" json:"display_name,omitempty"`
	Status      string     `db:"status" json:"status"`
	Provider    string     `db:"provider" json:"provider"`
	MeID        *string    `db:"me_id" json:"me_id,omitempty"`
	MePushName  *string    `db:"me_push_name" json:"me_push_name,omitempty"`
	MeLID       *string    `db:"me_lid" json:"me_lid,omitempty"`
	MeJID       *string    `db:"me_jid" json:"me_jid,omitempty"`
	QR          *string    `db:"qr" json:"-"`
	QRExpiresAt *time.Time `db:"qr_expires_at" json:"qr_expires_at,omitempty"`
	TenantID    *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// HasValidQR reports whether the cached QR may still be served at now
func (s WhatsAppSession) HasValidQR(now time.Time) bool {
	return s.QR != nil && *s.QR != "" && s.QRExpiresAt != nil && now.Before(*s.QRExpiresAt)
}

// Category is a tenant-scoped label used to segment contacts
type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	TenantID    uuid.UUID `db:"tenant_id" json:"tenant_id"`
	Name        string    `db:"name" json:"name"`
	Color       string    `db:"color" json:"color"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Contact is a campaign recipient. Phone is always E.164.
type Contact struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	TenantID   uuid.UUID   `db:"tenant_id" json:"tenant_id"`
	Name       string      `db:"name" json:"name"`
	Phone      string      `db:"phone" json:"phone"`
	Email      *string     `db:"email" json:"email,omitempty"`
	Notes      *string     `db:"notes" json:"notes,omitempty"`
	Tags       StringArray `db:"tags" json:"tags"`
	CategoryID *uuid.UUID  `db:"category_id" json:"category_id,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`

	Category *Category `db:"-" json:"category,omitempty"`
}

// Campaign is a bulk send to a category segment through a set of sessions
type Campaign struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	TenantID         *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	Name             string     `db:"name" json:"name"`
	TargetTags       RawJSON    `db:"target_tags" json:"-"`
	SessionNames     RawJSON    `db:"session_names" json:"-"`
	MessageType      string     `db:"message_type" json:"message_type"`
	MessageContent   RawJSON    `db:"message_content" json:"-"`
	RandomDelay      int        `db:"random_delay" json:"random_delay"`
	StartImmediately bool       `db:"start_immediately" json:"start_immediately"`
	ScheduledFor     *time.Time `db:"scheduled_for" json:"scheduled_for,omitempty"`
	TotalContacts    int        `db:"total_contacts" json:"total_contacts"`
	Status           string     `db:"status" json:"status"`
	StartedAt        *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedBy        *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedByName    *string    `db:"created_by_name" json:"created_by_name,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// CampaignWithCount is a campaign list row with its message count
type CampaignWithCount struct {
	Campaign
	MessageCount int `db:"message_count" json:"message_count"`
}

// CampaignMessage is one planned send to one contact
type CampaignMessage struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	CampaignID        uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	ContactID         uuid.UUID  `db:"contact_id" json:"contact_id"`
	ContactName       string     `db:"contact_name" json:"contact_name"`
	ContactPhone      string     `db:"contact_phone" json:"contact_phone"`
	SessionName       *string    `db:"session_name" json:"session_name,omitempty"`
	Status            string     `db:"status" json:"status"`
	SentAt            *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	ErrorMessage      *string    `db:"error_message" json:"error_message,omitempty"`
	SelectedVariation *string    `db:"selected_variation" json:"selected_variation,omitempty"`
	TenantID          *uuid.UUID `db:"tenant_id" json:"tenant_id,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

// GlobalSettings holds the gateway credentials shared by every tenant
type GlobalSettings struct {
	ID              uuid.UUID `db:"id" json:"id"`
	WahaHost        string    `db:"waha_host" json:"waha_host"`
	WahaAPIKey      string    `db:"waha_api_key" json:"waha_api_key"`
	EvolutionHost   string    `db:"evolution_host" json:"evolution_host"`
	EvolutionAPIKey string    `db:"evolution_api_key" json:"evolution_api_key"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// TenantSettings holds per-tenant AI provider keys
type TenantSettings struct {
	TenantID     uuid.UUID `db:"tenant_id" json:"tenant_id"`
	OpenAIAPIKey *string   `db:"openai_api_key" json:"openai_api_key,omitempty"`
	GroqAPIKey   *string   `db:"groq_api_key" json:"groq_api_key,omitempty"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
