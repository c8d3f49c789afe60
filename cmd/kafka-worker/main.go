package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campaign-server/internal/clients/kafka"
	"campaign-server/internal/config"
	"campaign-server/internal/events/consumers"
	"campaign-server/internal/observability"
)

func main() {
	// Initialize logger
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting domain event audit consumer...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.Kafka.Enabled {
		log.Fatal("KAFKA_BROKERS is not set")
	}

	kafkaConsumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.ConsumerGroup,
	}, logger)

	auditConsumer := consumers.NewAuditConsumer(kafkaConsumer, logger)

	logger.Info(ctx, fmt.Sprintf(`Audit consumer configuration:
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := auditConsumer.Start(ctx); err != nil {
			logger.Error(ctx, "Audit consumer error", err)
			cancel()
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping consumer...")
	case <-ctx.Done():
	}
	cancel()
	<-done

	if err := auditConsumer.Stop(); err != nil {
		logger.Error(ctx, "Error stopping audit consumer", err)
	}

	logger.Info(ctx, "Audit consumer stopped")
}
