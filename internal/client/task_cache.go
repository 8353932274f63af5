package client

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/events"
)

// CacheState is the observable state of the task cache.
type CacheState string

// Cache states. The cache is Empty while no session exists, Loading
// while the initial full fetch is in flight, and Populated afterwards.
const (
	CacheEmpty     CacheState = "empty"
	CacheLoading   CacheState = "loading"
	CachePopulated CacheState = "populated"
)

// TaskCache holds the client's working set of tasks. It is populated by
// an initial full fetch and then mutated in place by incremental events
// from the broadcast channel. A reconnect after a dropped channel does
// not replay missed events; the set stays stale until the next full
// fetch.
type TaskCache struct {
	mu    sync.RWMutex
	state CacheState
	tasks []*domain.Task
}

// NewTaskCache creates an empty TaskCache.
func NewTaskCache() *TaskCache {
	return &TaskCache{state: CacheEmpty}
}

// State returns the cache's current state.
func (c *TaskCache) State() CacheState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// BeginLoad marks the start of a full fetch, triggered when a session
// becomes valid.
func (c *TaskCache) BeginLoad() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = CacheLoading
}

// Populate installs the result of a full fetch.
func (c *TaskCache) Populate(tasks []*domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append([]*domain.Task(nil), tasks...)
	c.state = CachePopulated
}

// Clear discards the working set, triggered when the session becomes
// invalid.
func (c *TaskCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = nil
	c.state = CacheEmpty
}

// Apply mutates the held set according to a broadcast event: created
// tasks are prepended, updated tasks replaced by id, deleted ids
// removed. Events arriving while the cache is not populated are ignored.
func (c *TaskCache) Apply(event *events.TaskEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != CachePopulated {
		return nil
	}

	switch event.Type {
	case events.TaskCreated:
		var task domain.Task
		if err := event.UnmarshalPayload(&task); err != nil {
			return err
		}
		c.tasks = append([]*domain.Task{&task}, c.tasks...)

	case events.TaskUpdated:
		var task domain.Task
		if err := event.UnmarshalPayload(&task); err != nil {
			return err
		}
		for i, held := range c.tasks {
			if held.ID == task.ID {
				c.tasks[i] = &task
				break
			}
		}

	case events.TaskDeleted:
		var id uuid.UUID
		if err := event.UnmarshalPayload(&id); err != nil {
			return err
		}
		for i, held := range c.tasks {
			if held.ID == id {
				c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
				break
			}
		}
	}

	return nil
}

// Tasks returns a snapshot of the held set.
func (c *TaskCache) Tasks() []*domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*domain.Task(nil), c.tasks...)
}

// Filter derives a view of the held set whose title or description
// contains the query, case-insensitively. The held set itself is not
// mutated. An empty query returns everything.
func (c *TaskCache) Filter(query string) []*domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(query)

	matched := make([]*domain.Task, 0, len(c.tasks))
	for _, task := range c.tasks {
		if strings.Contains(strings.ToLower(task.Title), query) ||
			strings.Contains(strings.ToLower(task.Description), query) {
			matched = append(matched, task)
		}
	}

	return matched
}
