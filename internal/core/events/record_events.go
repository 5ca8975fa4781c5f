package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeRecordCreated = "record.created"
	EventTypeRecordUpdated = "record.updated"
	EventTypeRecordDeleted = "record.deleted"
)

// RecordEventTypes lists every record mutation event.
var RecordEventTypes = []string{EventTypeRecordCreated, EventTypeRecordUpdated, EventTypeRecordDeleted}

// RecordEvent reports one successful mutation of a screen's records.
type RecordEvent struct {
	BaseEvent
	Screen   string `json:"screen"`
	RecordID string `json:"record_id"`
	Label    string `json:"label"`
	Actor    string `json:"actor,omitempty"`
}

func NewRecordEvent(eventType, screen, recordID, label, actor string) *RecordEvent {
	return &RecordEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.NewString(),
			Type:      eventType,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"screen":    screen,
				"record_id": recordID,
				"label":     label,
				"actor":     actor,
			},
		},
		Screen:   screen,
		RecordID: recordID,
		Label:    label,
		Actor:    actor,
	}
}

// Action returns the verb of the mutation: created, updated or deleted.
func (e *RecordEvent) Action() string {
	switch e.Type {
	case EventTypeRecordCreated:
		return "created"
	case EventTypeRecordUpdated:
		return "updated"
	case EventTypeRecordDeleted:
		return "deleted"
	}
	return e.Type
}
