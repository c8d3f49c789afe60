package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

func (f *Fixtures) CreateTenant() Tenant {
	f.t.Helper()
	suffix := uuid.New().String()[:8]
	tenant, err := f.testDB.Store.CreateTenant(f.ctx, CreateTenantParams{
		Slug: "tenant-" + suffix,
		Name: "Tenant " + suffix,
	})
	require.NoError(f.t, err, "failed to create test tenant")
	return tenant
}

func (f *Fixtures) CreateCategory(tenantID uuid.UUID, name string) Category {
	f.t.Helper()
	category, err := f.testDB.Store.CreateCategory(f.ctx, CreateCategoryParams{
		TenantID: tenantID,
		Name:     name,
		Color:    "#3B82F6",
	})
	require.NoError(f.t, err, "failed to create test category")
	return category
}

func (f *Fixtures) CreateContact(tenantID uuid.UUID, name, phone string, categoryID *uuid.UUID) Contact {
	f.t.Helper()
	contact, err := f.testDB.Store.CreateContact(f.ctx, CreateContactParams{
		TenantID:   tenantID,
		Name:       name,
		Phone:      phone,
		Tags:       []string{"lead"},
		CategoryID: categoryID,
	})
	require.NoError(f.t, err, "failed to create test contact")
	return contact
}

// CreateSession registers a session and forces it into the given status.
func (f *Fixtures) CreateSession(tenantID *uuid.UUID, status string) WhatsAppSession {
	f.t.Helper()
	session, err := f.testDB.Store.CreateSession(f.ctx, CreateSessionParams{
		Name:        "session_" + uuid.New().String()[:8],
		DisplayName: "Session",
		Status:      status,
		Provider:    ProviderWaha,
		TenantID:    tenantID,
	})
	require.NoError(f.t, err, "failed to create test session")
	return session
}

func (f *Fixtures) CreateCampaign(tenantID uuid.UUID, status string, messages []PlannedMessage) Campaign {
	f.t.Helper()
	campaign, err := f.testDB.Store.CreateCampaignWithMessages(f.ctx, CreateCampaignParams{
		TenantID:       &tenantID,
		Name:           "Campaign " + uuid.New().String()[:8],
		TargetTags:     RawJSON(`[]`),
		SessionNames:   RawJSON(`["s1"]`),
		MessageType:    MessageTypeText,
		MessageContent: RawJSON(`{"text":"hello"}`),
		Status:         status,
	}, messages)
	require.NoError(f.t, err, "failed to create test campaign")
	return campaign
}
