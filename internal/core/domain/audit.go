package domain

import "time"

// AuditAction identifies what happened to an entity.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// AuditEvent records a single mutation performed through the API.
type AuditEvent struct {
	Entity    string      `bson:"entity"`    // "user" or "contact"
	EntityID  string      `bson:"entity_id"`
	Action    AuditAction `bson:"action"`
	ActorID   string      `bson:"actor_id"`  // user id from the bearer token, if any
	Timestamp time.Time   `bson:"timestamp"`
}
