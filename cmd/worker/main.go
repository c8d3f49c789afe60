package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campaign-server/internal/bootstrap"
	"campaign-server/internal/config"
	"campaign-server/internal/jobs"
	"campaign-server/internal/jobs/scheduler"
	schedjobs "campaign-server/internal/jobs/scheduler/jobs"
	"campaign-server/internal/jobs/workers"
	"campaign-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Cleanup()

	redisOpt := bootstrap.RedisClientOpt(cfg.Redis)

	// Initialize workers
	dispatchWorker := workers.NewDispatchWorker(&deps.Store, deps.JobClient, logger)
	syncWorker := workers.NewSyncWorker(&deps.SessionProcessor, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: cfg.Jobs.Concurrency,
			Queues:      jobs.Queues,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed: %v", task.Type(), err), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeCampaignDispatch, dispatchWorker.ProcessCampaignDispatchTask)
	mux.HandleFunc(jobs.TypeSessionsSync, syncWorker.ProcessSessionsSyncTask)

	// Setup periodic tasks
	asynqScheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})
	periodic := scheduler.New(asynqScheduler, logger)
	if err := periodic.Register(schedjobs.NewSessionsSyncJob(cfg.Jobs.SessionSyncInterval)); err != nil {
		log.Fatalf("Failed to register session sync: %v", err)
	}

	if err := asynqScheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer asynqScheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start the server; Start returns once the processors are running
	if err := srv.Start(mux); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
	logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", cfg.Redis.Addr))

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
