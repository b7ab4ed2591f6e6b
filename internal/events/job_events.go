package events

import "time"

const JobTopic = "ops.schedule.job.v1"

const JobStatusChanged = "job.status_changed"

type JobStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	JobID      string    `json:"job_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Envelope is the subset every event shares; consumers decode it first to
// route on EventType.
type Envelope struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Topics lists every topic the service publishes to.
func Topics() []string {
	return []string{AssignmentTopic, JobTopic}
}
