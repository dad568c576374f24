package model

import (
	"time"

	"github.com/google/uuid"
)

type EventAction string

const (
	EventCreated  EventAction = "CREATED"
	EventUpdated  EventAction = "UPDATED"
	EventDeleted  EventAction = "DELETED"
	EventRestored EventAction = "RESTORED"
)

// Event is a lifecycle notification emitted after a committed change.
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Entity    string      `json:"entity"`
	EntityID  int64       `json:"entityId"`
	Action    EventAction `json:"action"`
	Actor     string      `json:"actor,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewEvent(entity string, id int64, action EventAction) Event {
	return Event{
		ID:        uuid.New(),
		Entity:    entity,
		EntityID:  id,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
}
