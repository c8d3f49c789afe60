package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateTenantParams represents parameters for provisioning a tenant
type CreateTenantParams struct {
	Slug string
	Name string
}

const tenantColumns = `id, slug, name, active, max_users, max_contacts, max_campaigns, max_connections, created_at, updated_at`

const sqlCreateTenant = `
INSERT INTO tenants (slug, name)
VALUES ($1, $2)
RETURNING ` + tenantColumns

// CreateTenant provisions a tenant with default limits
func (s *Store) CreateTenant(ctx context.Context, params CreateTenantParams) (Tenant, error) {
	var tenant Tenant
	err := s.db.GetContext(ctx, &tenant, sqlCreateTenant, params.Slug, params.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return Tenant{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create tenant", err)
		return Tenant{}, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, nil
}

const sqlGetTenantByID = `
SELECT ` + tenantColumns + `
FROM tenants
WHERE id = $1
`

// GetTenantByID retrieves a tenant
func (s *Store) GetTenantByID(ctx context.Context, id uuid.UUID) (Tenant, error) {
	var tenant Tenant
	err := s.db.GetContext(ctx, &tenant, sqlGetTenantByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tenant{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get tenant by id", err)
		return Tenant{}, fmt.Errorf("failed to get tenant by id: %w", err)
	}
	return tenant, nil
}
