package bootstrap

import (
	"context"
	"fmt"

	"campaign-server/internal/config"
	"campaign-server/internal/events"
	"campaign-server/internal/jobs"
	"campaign-server/internal/observability"
	"campaign-server/internal/provider"
	"campaign-server/internal/ratelimit"
	"campaign-server/internal/store"

	authHandler "campaign-server/internal/auth/handler"
	authProcessor "campaign-server/internal/auth/processor"
	campaignHandler "campaign-server/internal/campaign/handler"
	campaignProcessor "campaign-server/internal/campaign/processor"
	"campaign-server/internal/clients/evolution"
	kafkaClient "campaign-server/internal/clients/kafka"
	"campaign-server/internal/clients/llm"
	redisClient "campaign-server/internal/clients/redis"
	"campaign-server/internal/clients/waha"
	contactsHandler "campaign-server/internal/contacts/handler"
	contactsProcessor "campaign-server/internal/contacts/processor"
	sessionsHandler "campaign-server/internal/sessions/handler"
	sessionsProcessor "campaign-server/internal/sessions/processor"
	settingsHandler "campaign-server/internal/settings/handler"
	settingsProcessor "campaign-server/internal/settings/processor"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     authHandler.Handler
	SessionsHandler sessionsHandler.Handler
	ContactsHandler contactsHandler.Handler
	CampaignHandler campaignHandler.Handler
	SettingsHandler settingsHandler.Handler

	RateLimiter *ratelimit.Service

	// Used by the background worker
	SessionProcessor sessionsProcessor.SessionProcessor

	// Clients (for cleanup)
	Redis         *redisClient.Client
	JobClient     *jobs.Client
	KafkaProducer *kafkaClient.Producer
}

// RedisClientOpt returns the asynq connection options for cfg
func RedisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize Redis; the settings cache and the rate limiter degrade without it
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.WarnWithError(ctx, "Redis unavailable, continuing without cache and rate limiting", err)
		deps.Redis = nil
	}
	var cache settingsProcessor.Cache
	if deps.Redis.IsEnabled() {
		cache = deps.Redis
	}

	// Initialize Kafka producer; events are dropped when Kafka is not configured
	var producer events.EventProducer
	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		producer = deps.KafkaProducer
	}
	publisher := events.NewPublisher(producer, logger)

	deps.JobClient = jobs.NewClient(RedisClientOpt(cfg.Redis), logger)

	// Initialize settings processor and handler
	settingsProc := settingsProcessor.New(&deps.Store, cache, cfg.Providers, logger)
	deps.SettingsHandler = settingsHandler.New(settingsProc, logger)

	// Initialize provider adapters
	registry := provider.NewRegistry(
		waha.NewClient(cfg.Providers.Timeout, cfg.Providers.RequestsPerSecond, logger),
		evolution.NewClient(cfg.Providers.Timeout, cfg.Providers.RequestsPerSecond, logger),
	)

	// Initialize session processor and handler
	deps.SessionProcessor = sessionsProcessor.New(
		&deps.Store,
		registry,
		&settingsProc,
		publisher,
		cfg.Providers.SyncConcurrency,
		logger,
	)
	deps.SessionsHandler = sessionsHandler.New(deps.SessionProcessor, logger)

	// Initialize contact processor and handler
	contactsProc := contactsProcessor.New(&deps.Store, logger)
	deps.ContactsHandler = contactsHandler.New(contactsProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(
		&deps.Store,
		&contactsProc,
		deps.JobClient,
		publisher,
		&settingsProc,
		llm.NewClient(cfg.Providers.Timeout, logger),
		logger,
	)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = authHandler.New(authProc, logger)

	var counter ratelimit.Counter
	if deps.Redis.IsEnabled() {
		counter = deps.Redis
	}
	deps.RateLimiter = ratelimit.NewService(counter, cfg.RateLimit.RequestsPerMinute, logger)

	return deps, nil
}

// Cleanup closes all connections
func (d *Dependencies) Cleanup() {
	ctx := context.Background()

	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close Kafka producer", err)
		}
	}
	if d.Redis.IsEnabled() {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close Redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
