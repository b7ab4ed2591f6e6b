package kafka

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows exhausted MaxPublishAttempts and are no longer polled.
	OutboxStatusDead = "dead"

	MaxPublishAttempts = 10
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
}

// OutboxRecord is the table definition used by AutoMigrate. Reads and
// writes go through OutboxRepository with plain SQL.
type OutboxRecord struct {
	ID            string     `gorm:"column:id;type:uuid;primaryKey"`
	RequestID     string     `gorm:"column:request_id;type:varchar(64)"`
	AggregateType string     `gorm:"column:aggregate_type;type:varchar(50);not null"`
	AggregateID   string     `gorm:"column:aggregate_id;type:varchar(64);not null"`
	EventType     string     `gorm:"column:event_type;type:varchar(100);not null"`
	Topic         string     `gorm:"column:topic;type:varchar(255);not null"`
	Payload       []byte     `gorm:"column:payload;type:jsonb;not null"`
	Status        string     `gorm:"column:status;type:varchar(20);not null;default:pending;index:idx_outbox_status_created"`
	RetryCount    int        `gorm:"column:retry_count;not null;default:0"`
	ErrorMessage  *string    `gorm:"column:error_message;type:varchar(500)"`
	NextRetryAt   *time.Time `gorm:"column:next_retry_at"`
	ProcessedAt   *time.Time `gorm:"column:processed_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;default:now();index:idx_outbox_status_created"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null;default:now()"`
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}

// NewEvent builds a pending OutboxEvent with a JSON payload.
func NewEvent(requestID, aggregateType, aggregateID, eventType, topic string, payload any) (OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxEvent{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        OutboxStatusPending,
	}, nil
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

const (
	insertOutboxSQL = `INSERT INTO outbox_events
	(id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// Failed rows wait for next_retry_at; dead rows are never selected.
	selectDueOutboxSQL = `SELECT id::text, COALESCE(request_id, ''), aggregate_type, aggregate_id,
	event_type, topic, payload, status, retry_count
	FROM outbox_events
	WHERE status IN ($1, $2) AND (next_retry_at IS NULL OR next_retry_at <= NOW())
	ORDER BY created_at, id
	LIMIT $3`

	markOutboxSentSQL = `UPDATE outbox_events
	SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
	WHERE id = $1`

	// Backoff grows by 15s per attempt up to 150s.
	markOutboxFailedSQL = `UPDATE outbox_events
	SET status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
		retry_count = retry_count + 1,
		error_message = LEFT($3, 500),
		next_retry_at = NOW() + make_interval(secs => 15 * LEAST(retry_count + 1, 10)),
		updated_at = NOW()
	WHERE id = $1`
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() dbtx {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, e OutboxEvent) error {
	if err := ValidateOutboxEvent(e); err != nil {
		return err
	}
	_, err := r.conn().ExecContext(ctx, insertOutboxSQL,
		e.ID, e.RequestID, e.AggregateType, e.AggregateID, e.EventType, e.Topic, e.Payload, e.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.conn().QueryContext(ctx, selectDueOutboxSQL, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	due := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		e, err := scanOutboxEvent(rows)
		if err != nil {
			return nil, err
		}
		due = append(due, e)
	}
	return due, rows.Err()
}

func scanOutboxEvent(rows *sql.Rows) (OutboxEvent, error) {
	var e OutboxEvent
	err := rows.Scan(
		&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
		&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount,
	)
	return e, err
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.conn().ExecContext(ctx, markOutboxSentSQL, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.conn().ExecContext(ctx, markOutboxFailedSQL,
		id, OutboxStatusFailed, reason, MaxPublishAttempts, OutboxStatusDead,
	)
	return err
}

var ErrInvalidOutboxEvent = errors.New("invalid outbox event")

// ValidateOutboxEvent accepts only events that can be written as new rows.
func ValidateOutboxEvent(e OutboxEvent) error {
	var missing string
	switch {
	case e.ID == "":
		missing = "id"
	case e.Topic == "":
		missing = "topic"
	case e.AggregateID == "":
		missing = "aggregate id"
	case e.EventType == "":
		missing = "event type"
	case len(e.Payload) == 0:
		missing = "payload"
	}
	if missing != "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidOutboxEvent, missing)
	}

	switch e.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("%w: status %q", ErrInvalidOutboxEvent, e.Status)
	}
}
