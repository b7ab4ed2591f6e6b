package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BMarcano/dispatcher/internal/bootstrap"
	"github.com/BMarcano/dispatcher/internal/config"
	"github.com/BMarcano/dispatcher/internal/events"
	"github.com/BMarcano/dispatcher/internal/messaging/kafka/consumer"
	"github.com/BMarcano/dispatcher/internal/shared/connection"

	"go.uber.org/zap"
)

const scheduleAuditGroup = "dispatcher-schedule-audit"

// RunConsumer writes every schedule event to the audit log until a shutdown signal.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	reader := connection.NewKafkaReader(cfg.KafkaBroker, scheduleAuditGroup, events.Topics()...)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeScheduleEvents(ctx, reader, bootstrap.NewStdoutAuditLogger(logger), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
