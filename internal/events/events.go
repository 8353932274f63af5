package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// EventType names a kind of task mutation on the broadcast channel.
type EventType string

// The three event kinds the channel carries.
const (
	TaskCreated EventType = "taskCreated"
	TaskUpdated EventType = "taskUpdated"
	TaskDeleted EventType = "taskDeleted"
)

// TaskEvent is a single broadcast message. Created and updated events
// carry the full resulting task; deleted events carry only the id.
type TaskEvent struct {
	// Type indicates which mutation occurred.
	Type EventType `json:"event"`

	// Payload is the affected task (or its id, for deletion),
	// serialized as JSON.
	Payload json.RawMessage `json:"payload"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *TaskEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewTaskCreated builds a taskCreated event carrying the persisted task.
func NewTaskCreated(task *domain.Task) (*TaskEvent, error) {
	return newEvent(TaskCreated, task)
}

// NewTaskUpdated builds a taskUpdated event carrying the updated task.
func NewTaskUpdated(task *domain.Task) (*TaskEvent, error) {
	return newEvent(TaskUpdated, task)
}

// NewTaskDeleted builds a taskDeleted event carrying the deleted id.
func NewTaskDeleted(id uuid.UUID) (*TaskEvent, error) {
	return newEvent(TaskDeleted, id)
}

func newEvent(eventType EventType, payload interface{}) (*TaskEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &TaskEvent{
		Type:    eventType,
		Payload: payloadBytes,
	}, nil
}

// Publisher is implemented by components that can fan events out to
// connected clients. Publishing is fire-and-forget: it never blocks on
// subscriber delivery and never reports per-subscriber failures, so a
// failed broadcast cannot fail the mutation that produced it.
type Publisher interface {
	Publish(ctx context.Context, event *TaskEvent)
}
