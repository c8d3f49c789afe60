package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UpdateGlobalSettingsParams represents the gateway credentials to persist
type UpdateGlobalSettingsParams struct {
	WahaHost        string
	WahaAPIKey      string
	EvolutionHost   string
	EvolutionAPIKey string
}

// UpdateTenantSettingsParams represents the AI keys of a tenant. A nil key is left unchanged.
type UpdateTenantSettingsParams struct {
	OpenAIAPIKey *string
	GroqAPIKey   *string
}

const sqlGetGlobalSettings = `
SELECT id, waha_host, waha_api_key, evolution_host, evolution_api_key, updated_at
FROM global_settings
WHERE singleton = TRUE
`

// GetGlobalSettings returns the singleton settings row, or ErrNotFound before the first write
func (s *Store) GetGlobalSettings(ctx context.Context) (GlobalSettings, error) {
	var settings GlobalSettings
	err := s.db.GetContext(ctx, &settings, sqlGetGlobalSettings)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GlobalSettings{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get global settings", err)
		return GlobalSettings{}, fmt.Errorf("failed to get global settings: %w", err)
	}
	return settings, nil
}

const sqlUpsertGlobalSettings = `
INSERT INTO global_settings (singleton, waha_host, waha_api_key, evolution_host, evolution_api_key)
VALUES (TRUE, $1, $2, $3, $4)
ON CONFLICT (singleton) DO UPDATE SET
    waha_host = EXCLUDED.waha_host,
    waha_api_key = EXCLUDED.waha_api_key,
    evolution_host = EXCLUDED.evolution_host,
    evolution_api_key = EXCLUDED.evolution_api_key,
    updated_at = NOW()
RETURNING id, waha_host, waha_api_key, evolution_host, evolution_api_key, updated_at
`

// UpsertGlobalSettings writes the singleton settings row
func (s *Store) UpsertGlobalSettings(ctx context.Context, params UpdateGlobalSettingsParams) (GlobalSettings, error) {
	var settings GlobalSettings
	err := s.db.GetContext(ctx, &settings, sqlUpsertGlobalSettings,
		params.WahaHost,
		params.WahaAPIKey,
		params.EvolutionHost,
		params.EvolutionAPIKey)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert global settings", err)
		return GlobalSettings{}, fmt.Errorf("failed to upsert global settings: %w", err)
	}
	return settings, nil
}

const sqlGetTenantSettings = `
SELECT tenant_id, openai_api_key, groq_api_key, updated_at
FROM tenant_settings
WHERE tenant_id = $1
`

// GetTenantSettings returns the settings of a tenant, or ErrNotFound if none were saved
func (s *Store) GetTenantSettings(ctx context.Context, tenantID uuid.UUID) (TenantSettings, error) {
	var settings TenantSettings
	err := s.db.GetContext(ctx, &settings, sqlGetTenantSettings, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TenantSettings{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get tenant settings", err)
		return TenantSettings{}, fmt.Errorf("failed to get tenant settings: %w", err)
	}
	return settings, nil
}

const sqlUpsertTenantSettings = `
INSERT INTO tenant_settings (tenant_id, openai_api_key, groq_api_key)
VALUES ($1, $2, $3)
ON CONFLICT (tenant_id) DO UPDATE SET
    openai_api_key = COALESCE(EXCLUDED.openai_api_key, tenant_settings.openai_api_key),
    groq_api_key = COALESCE(EXCLUDED.groq_api_key, tenant_settings.groq_api_key),
    updated_at = NOW()
RETURNING tenant_id, openai_api_key, groq_api_key, updated_at
`

// UpsertTenantSettings writes the AI keys of a tenant
func (s *Store) UpsertTenantSettings(ctx context.Context, tenantID uuid.UUID, params UpdateTenantSettingsParams) (TenantSettings, error) {
	var settings TenantSettings
	err := s.db.GetContext(ctx, &settings, sqlUpsertTenantSettings, tenantID, params.OpenAIAPIKey, params.GroqAPIKey)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert tenant settings", err)
		return TenantSettings{}, fmt.Errorf("failed to upsert tenant settings: %w", err)
	}
	return settings, nil
}
