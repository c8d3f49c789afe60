package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaign-server/internal/clients/redis"
	"campaign-server/internal/config"
	"campaign-server/internal/observability"
	"campaign-server/internal/provider"
	"campaign-server/internal/store"
	"campaign-server/internal/tenancy"

	"github.com/google/uuid"
)

// SettingsStore defines the database operations required by SettingsProcessor
type SettingsStore interface {
	GetGlobalSettings(ctx context.Context) (store.GlobalSettings, error)
	UpsertGlobalSettings(ctx context.Context, params store.UpdateGlobalSettingsParams) (store.GlobalSettings, error)
	GetTenantSettings(ctx context.Context, tenantID uuid.UUID) (store.TenantSettings, error)
	UpsertTenantSettings(ctx context.Context, tenantID uuid.UUID, params store.UpdateTenantSettingsParams) (store.TenantSettings, error)
}

// Cache is the key/value cache in front of the global settings row
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

const globalSettingsKey = "settings:global"

var ErrForbidden = errors.New("only a super admin can manage gateway settings")

type SettingsProcessor struct {
	store    SettingsStore
	cache    Cache
	defaults config.ProvidersConfig
	ttl      time.Duration
	logger   *observability.Logger
}

// New creates a SettingsProcessor. A nil cache reads straight from the store.
func New(store SettingsStore, cache Cache, defaults config.ProvidersConfig, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:    store,
		cache:    cache,
		defaults: defaults,
		ttl:      defaults.SettingsCacheTTL,
		logger:   logger,
	}
}

// GatewaySettings are the effective WAHA and Evolution credentials
type GatewaySettings struct {
	WahaHost        string `json:"waha_host"`
	WahaAPIKey      string `json:"waha_api_key"`
	EvolutionHost   string `json:"evolution_host"`
	EvolutionAPIKey string `json:"evolution_api_key"`
}

// Masked returns a copy safe to show in API responses
func (g GatewaySettings) Masked() GatewaySettings {
	g.WahaAPIKey = MaskKey(g.WahaAPIKey)
	g.EvolutionAPIKey = MaskKey(g.EvolutionAPIKey)
	return g
}

// TenantAIKeys are the masked AI keys of a tenant
type TenantAIKeys struct {
	OpenAIAPIKey string `json:"openai_api_key"`
	GroqAPIKey   string `json:"groq_api_key"`
	HasOpenAI    bool   `json:"has_openai"`
	HasGroq      bool   `json:"has_groq"`
}

// Credentials implements provider.CredentialSource
func (p *SettingsProcessor) Credentials(ctx context.Context, kind string) (provider.Credentials, error) {
	settings, err := p.GetGatewaySettings(ctx)
	if err != nil {
		return provider.Credentials{}, err
	}

	switch kind {
	case provider.KindWaha:
		return provider.Credentials{Host: settings.WahaHost, APIKey: settings.WahaAPIKey}, nil
	case provider.KindEvolution:
		return provider.Credentials{Host: settings.EvolutionHost, APIKey: settings.EvolutionAPIKey}, nil
	default:
		return provider.Credentials{}, fmt.Errorf("%w: %s", provider.ErrUnknownProvider, kind)
	}
}

// GetGatewaySettings returns the effective gateway settings: cache, then database, then env defaults
func (p *SettingsProcessor) GetGatewaySettings(ctx context.Context) (GatewaySettings, error) {
	if cached, ok := p.readCache(ctx); ok {
		return cached, nil
	}

	row, err := p.store.GetGlobalSettings(ctx)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load global settings", err)
		return GatewaySettings{}, fmt.Errorf("failed to load global settings: %w", err)
	}

	settings := p.withDefaults(GatewaySettings{
		WahaHost:        row.WahaHost,
		WahaAPIKey:      row.WahaAPIKey,
		EvolutionHost:   row.EvolutionHost,
		EvolutionAPIKey: row.EvolutionAPIKey,
	})
	p.writeCache(ctx, settings)
	return settings, nil
}

// UpdateGatewaySettings persists new gateway settings and drops the cached copy
func (p *SettingsProcessor) UpdateGatewaySettings(ctx context.Context, scope tenancy.Scope, params store.UpdateGlobalSettingsParams) (GatewaySettings, error) {
	if !scope.IsSuperAdmin() {
		return GatewaySettings{}, ErrForbidden
	}

	params.WahaHost = normalizeHost(params.WahaHost)
	params.EvolutionHost = normalizeHost(params.EvolutionHost)

	row, err := p.store.UpsertGlobalSettings(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to update global settings", err)
		return GatewaySettings{}, fmt.Errorf("failed to update global settings: %w", err)
	}

	if p.cache != nil {
		if err := p.cache.Del(ctx, globalSettingsKey); err != nil && !errors.Is(err, redis.ErrNotInitialized) {
			p.logger.WarnWithError(ctx, "failed to invalidate settings cache", err)
		}
	}

	p.logger.Info(ctx, "gateway settings updated")

	return p.withDefaults(GatewaySettings{
		WahaHost:        row.WahaHost,
		WahaAPIKey:      row.WahaAPIKey,
		EvolutionHost:   row.EvolutionHost,
		EvolutionAPIKey: row.EvolutionAPIKey,
	}), nil
}

// GetTenantAIKeys returns the masked AI keys of a tenant
func (p *SettingsProcessor) GetTenantAIKeys(ctx context.Context, tenantID uuid.UUID) (TenantAIKeys, error) {
	settings, err := p.store.GetTenantSettings(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TenantAIKeys{}, nil
		}
		return TenantAIKeys{}, fmt.Errorf("failed to load tenant settings: %w", err)
	}
	return maskTenantKeys(settings), nil
}

// UpdateTenantAIKeys stores the AI keys of a tenant. A nil key keeps the stored one.
func (p *SettingsProcessor) UpdateTenantAIKeys(ctx context.Context, tenantID uuid.UUID, params store.UpdateTenantSettingsParams) (TenantAIKeys, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tenant_id", Value: tenantID.String()})

	settings, err := p.store.UpsertTenantSettings(ctx, tenantID, params)
	if err != nil {
		p.logger.Error(ctx, "failed to update tenant settings", err)
		return TenantAIKeys{}, fmt.Errorf("failed to update tenant settings: %w", err)
	}
	return maskTenantKeys(settings), nil
}

// AIKey returns the unmasked key a tenant configured for an AI message type
func (p *SettingsProcessor) AIKey(ctx context.Context, tenantID uuid.UUID, messageType string) (string, error) {
	settings, err := p.store.GetTenantSettings(ctx, tenantID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("failed to load tenant settings: %w", err)
	}

	var key *string
	switch messageType {
	case store.MessageTypeOpenAI:
		key = settings.OpenAIAPIKey
	case store.MessageTypeGroq:
		key = settings.GroqAPIKey
	}
	if key == nil || strings.TrimSpace(*key) == "" {
		return "", fmt.Errorf("%w: no %s api key for tenant", provider.ErrConfigurationMissing, messageType)
	}
	return *key, nil
}

func (p *SettingsProcessor) readCache(ctx context.Context) (GatewaySettings, bool) {
	if p.cache == nil {
		return GatewaySettings{}, false
	}

	raw, err := p.cache.Get(ctx, globalSettingsKey)
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) && !errors.Is(err, redis.ErrNotInitialized) {
			p.logger.WarnWithError(ctx, "failed to read settings cache", err)
		}
		return GatewaySettings{}, false
	}

	var settings GatewaySettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		p.logger.WarnWithError(ctx, "ignoring malformed settings cache entry", err)
		return GatewaySettings{}, false
	}
	return settings, true
}

func (p *SettingsProcessor) writeCache(ctx context.Context, settings GatewaySettings) {
	if p.cache == nil || p.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(settings)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, globalSettingsKey, raw, p.ttl); err != nil && !errors.Is(err, redis.ErrNotInitialized) {
		p.logger.WarnWithError(ctx, "failed to write settings cache", err)
	}
}

func (p *SettingsProcessor) withDefaults(s GatewaySettings) GatewaySettings {
	if s.WahaHost == "" {
		s.WahaHost = normalizeHost(p.defaults.DefaultWahaHost)
	}
	if s.WahaAPIKey == "" {
		s.WahaAPIKey = p.defaults.DefaultWahaAPIKey
	}
	if s.EvolutionHost == "" {
		s.EvolutionHost = normalizeHost(p.defaults.DefaultEvolutionHost)
	}
	if s.EvolutionAPIKey == "" {
		s.EvolutionAPIKey = p.defaults.DefaultEvolutionAPIKey
	}
	return s
}

func normalizeHost(host string) string {
	return strings.TrimRight(strings.TrimSpace(host), "/")
}

func maskTenantKeys(s store.TenantSettings) TenantAIKeys {
	keys := TenantAIKeys{}
	if s.OpenAIAPIKey != nil && *s.OpenAIAPIKey != "" {
		keys.OpenAIAPIKey = MaskKey(*s.OpenAIAPIKey)
		keys.HasOpenAI = true
	}
	if s.GroqAPIKey != nil && *s.GroqAPIKey != "" {
		keys.GroqAPIKey = MaskKey(*s.GroqAPIKey)
		keys.HasGroq = true
	}
	return keys
}

// MaskKey keeps the last four characters of a secret
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
