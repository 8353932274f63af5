package mocks

import (
	"context"
	"sync"

	"github.com/taskboard/taskboard-api/internal/events"
)

// MockPublisher implements events.Publisher for testing. It records
// every published event for later inspection.
type MockPublisher struct {
	// PublishFn allows test cases to mock the Publish behavior
	PublishFn func(ctx context.Context, event *events.TaskEvent)

	mu        sync.Mutex
	published []*events.TaskEvent
}

// Publish implements the events.Publisher interface
func (m *MockPublisher) Publish(ctx context.Context, event *events.TaskEvent) {
	if m.PublishFn != nil {
		m.PublishFn(ctx, event)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, event)
}

// Published returns a snapshot of the events recorded so far.
func (m *MockPublisher) Published() []*events.TaskEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*events.TaskEvent(nil), m.published...)
}

// Verify interface compliance at compile time
var _ events.Publisher = (*MockPublisher)(nil)
