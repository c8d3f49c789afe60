package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Tenant operations
	CreateTenant(ctx context.Context, params CreateTenantParams) (Tenant, error)
	GetTenantByID(ctx context.Context, id uuid.UUID) (Tenant, error)

	// Session operations
	CreateSession(ctx context.Context, params CreateSessionParams) (WhatsAppSession, error)
	GetSessionByName(ctx context.Context, name string, tenantID *uuid.UUID) (WhatsAppSession, error)
	ListSessions(ctx context.Context, tenantID *uuid.UUID) ([]WhatsAppSession, error)
	ListWorkingSessions(ctx context.Context, tenantID *uuid.UUID) ([]WhatsAppSession, error)
	GetWorkingSessionsByNames(ctx context.Context, names []string, tenantID *uuid.UUID) ([]WhatsAppSession, error)
	GetSessionsByNames(ctx context.Context, names []string) ([]WhatsAppSession, error)
	UpdateSessionStatus(ctx context.Context, params UpdateSessionStatusParams) (WhatsAppSession, error)
	SaveSessionQR(ctx context.Context, name, qr string, expiresAt time.Time) (WhatsAppSession, error)
	AssignSessionTenant(ctx context.Context, name string, tenantID uuid.UUID) (WhatsAppSession, error)
	DeleteSession(ctx context.Context, name string, tenantID *uuid.UUID) error

	// Category operations
	CreateCategory(ctx context.Context, params CreateCategoryParams) (Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (Category, error)
	ListCategories(ctx context.Context, params ListCategoriesParams) ([]Category, int, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params UpdateCategoryParams) (Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error

	// Contact operations
	CreateContact(ctx context.Context, params CreateContactParams) (Contact, error)
	GetContactByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (Contact, error)
	ListContacts(ctx context.Context, params ListContactsParams) ([]Contact, int, error)
	UpdateContact(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params UpdateContactParams) (Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
	ListContactsByCategories(ctx context.Context, tenantID uuid.UUID, categoryIDs []uuid.UUID) ([]Contact, error)

	// Campaign operations
	CreateCampaignWithMessages(ctx context.Context, params CreateCampaignParams, messages []PlannedMessage) (Campaign, error)
	GetCampaignByID(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) (Campaign, error)
	ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]CampaignWithCount, int, error)
	UpdateCampaign(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, params UpdateCampaignParams) (Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID, status string) (Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID, tenantID *uuid.UUID) error
	ListCampaignMessages(ctx context.Context, campaignID uuid.UUID) ([]CampaignMessage, error)
	CountCampaignMessages(ctx context.Context, campaignID uuid.UUID) (int, error)

	// Settings operations
	GetGlobalSettings(ctx context.Context) (GlobalSettings, error)
	UpsertGlobalSettings(ctx context.Context, params UpdateGlobalSettingsParams) (GlobalSettings, error)
	GetTenantSettings(ctx context.Context, tenantID uuid.UUID) (TenantSettings, error)
	UpsertTenantSettings(ctx context.Context, tenantID uuid.UUID, params UpdateTenantSettingsParams) (TenantSettings, error)
}

var _ Storer = (*Store)(nil)
