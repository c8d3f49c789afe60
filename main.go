package main

import (
	"context"
	"log"

	"campaign-server/internal/bootstrap"
	"campaign-server/internal/config"
	"campaign-server/internal/observability"
	"campaign-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
