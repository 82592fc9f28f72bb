package ports

import (
	"context"
	"time"

	"github.com/contactdesk/contacts-system/internal/core/domain"
)

// AuditEventInput is the DTO handed from services to the audit pipeline.
type AuditEventInput struct {
	Entity    string
	EntityID  string
	Action    domain.AuditAction
	ActorID   string
	Timestamp time.Time
}

// AuditService persists mutation records.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository stores audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditSink is the enqueue side of the audit pipeline. Services publish into
// it without blocking on persistence.
type AuditSink interface {
	Enqueue(event AuditEventInput)
}
