package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))

	l.Log(context.Background(), AuditLog{
		Action:    "assignment.created",
		Message:   "worker assigned",
		ActorID:   "u-1",
		RequestID: "rid-1",
		Meta:      map[string]any{"job_id": "job-1"},
	})

	entries := logs.FilterLoggerName("audit").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "assignment.created", fields["action"])
		assert.Equal(t, "u-1", fields["actor_id"])
		assert.Equal(t, "rid-1", fields["request_id"])
	}
}
