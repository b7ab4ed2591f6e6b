package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BMarcano/dispatcher/internal/config"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka/producer"
	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays pending outbox rows to kafka until a shutdown signal.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.OutboxPollInterval,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
