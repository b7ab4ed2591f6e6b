package producer

import (
	"context"
	"errors"
	"time"

	"github.com/BMarcano/dispatcher/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 3 * time.Second
	batchSize           = 50
)

// ProcessOutboxEvents polls the outbox every pollInterval until ctx is done.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		}
	}
}

// processPendingEvents publishes one batch in a single write and records
// the outcome of each row. A kafkago.WriteErrors result is matched to rows
// by position; any other error fails the whole batch.
func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	failures := publishBatch(ctx, writer, events)

	sent := 0
	for i, event := range events {
		if failures[i] != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(failures[i]),
			)
			if markErr := repo.MarkFailed(ctx, event.ID, failures[i].Error()); markErr != nil {
				logger.Error("mark outbox failure errored",
					zap.String("outbox_id", event.ID),
					zap.Error(markErr),
				)
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}
		sent++

		logger.Debug("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
		)
	}

	logger.Info("outbox batch done", zap.Int("sent", sent), zap.Int("failed", len(events)-sent))
	return nil
}

func publishBatch(ctx context.Context, writer MessageWriter, events []kafka.OutboxEvent) []error {
	failures := make([]error, len(events))

	msgs := make([]kafkago.Message, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, toMessage(e))
	}

	err := writer.WriteMessages(ctx, msgs...)
	if err == nil {
		return failures
	}

	var perMessage kafkago.WriteErrors
	if errors.As(err, &perMessage) && len(perMessage) == len(events) {
		copy(failures, perMessage)
		return failures
	}

	for i := range failures {
		failures[i] = err
	}
	return failures
}
