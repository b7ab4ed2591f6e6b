package consumer

import (
	"context"
	"encoding/json"

	"github.com/BMarcano/dispatcher/internal/bootstrap"
	"github.com/BMarcano/dispatcher/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeScheduleEvents records every schedule event in the audit log.
// Offsets are committed after the entry is written; messages that cannot
// be decoded are committed and skipped.
func ConsumeScheduleEvents(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.schedule_audit")
	log.Info("schedule audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("schedule audit consumer stopped")
				return
			}
			log.Error("fetch schedule message failed", zap.Error(err))
			continue
		}

		entry, err := toAuditLog(msg)
		if err != nil {
			log.Error("decode schedule event failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		audit.Log(ctx, entry)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit schedule message failed", zap.Error(err))
			continue
		}

		log.Debug("schedule event audited",
			zap.String("event_type", entry.Action),
			zap.String("topic", msg.Topic),
		)
	}
}

func toAuditLog(msg kafkago.Message) (bootstrap.AuditLog, error) {
	var env events.Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return bootstrap.AuditLog{}, err
	}

	var meta map[string]any
	if err := json.Unmarshal(msg.Value, &meta); err != nil {
		return bootstrap.AuditLog{}, err
	}
	meta["topic"] = msg.Topic
	meta["key"] = string(msg.Key)

	return bootstrap.AuditLog{
		Action:    env.EventType,
		Message:   "schedule event received",
		ActorID:   env.ActorID,
		RequestID: env.RequestID,
		Meta:      meta,
	}, nil
}
