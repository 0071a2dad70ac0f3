package contracts

import (
	"context"
	"fmt"
	"time"
)

// ResourceEvent is pushed to the dashboard update queue on every mutation.
// EventID is derived from the resource id and its updatedAt version so that
// consumers can apply the same event twice without corrupting their state.
type ResourceEvent struct {
	EventID  string `json:"event_id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	RecordID string `json:"record_id"`
}

type EventPublisher interface {
	PublishResourceEvent(ctx context.Context, event *ResourceEvent) error
}

// NewResourceEvent derives a deterministic event id from the record id and
// its updatedAt version, so a retried publish produces the same event.
func NewResourceEvent(resource, action, recordID string, version time.Time) *ResourceEvent {
	return &ResourceEvent{
		EventID:  fmt.Sprintf("%s:%s:%s:%d", resource, action, recordID, version.UnixNano()),
		Resource: resource,
		Action:   action,
		RecordID: recordID,
	}
}
