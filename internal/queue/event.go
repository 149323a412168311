// Package queue defines message payloads exchanged over the message broker
// and the publisher that emits them.
package queue

// EntityEvent is published whenever the business layer changes an entity.
// It contains enough information for downstream consumers to log or audit
// the change without querying the primary database.
type EntityEvent struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"` // created | updated | patched | deleted | soft_deleted | activated
	EntityID   uint   `json:"entity_id"`
	OccurredAt string `json:"occurred_at"`
}

// Actions recorded in EntityEvent.
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionPatched     = "patched"
	ActionDeleted     = "deleted"
	ActionSoftDeleted = "soft_deleted"
	ActionActivated   = "activated"
)
