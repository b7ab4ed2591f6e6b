package bootstrap

import "context"

type AuditLog struct {
	Action    string
	Message   string
	ActorID   string
	RequestID string
	Meta      map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
