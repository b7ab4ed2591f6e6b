package events

import "time"

const AssignmentTopic = "ops.schedule.assignment.v1"

const (
	AssignmentCreated = "assignment.created"
	AssignmentDeleted = "assignment.deleted"
)

// AssignmentCreatedEvent covers one batch: one worker, one job, one or
// more days.
type AssignmentCreatedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	JobID         string    `json:"job_id"`
	WorkerID      string    `json:"worker_id"`
	AssignmentIDs []string  `json:"assignment_ids"`
	Days          []string  `json:"days"`
	Multiplier    string    `json:"multiplier"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type AssignmentDeletedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	AssignmentID string    `json:"assignment_id"`
	JobID        string    `json:"job_id"`
	WorkerID     string    `json:"worker_id"`
	Day          string    `json:"day"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
