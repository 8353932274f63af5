package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/events"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/store"
)

// TaskService provides CRUD operations over tasks. Every successful
// mutation is published to the broadcast channel before the result is
// returned, so the issuing client receives its own change back through
// the channel as well as in the direct response.
//
// Update and Delete perform no ownership check: any authenticated caller
// may modify any task. This shared-board policy is deliberate.
type TaskService struct {
	taskStore store.TaskStore
	publisher events.Publisher
}

// NewTaskService creates a TaskService with the given dependencies.
func NewTaskService(taskStore store.TaskStore, publisher events.Publisher) *TaskService {
	return &TaskService{
		taskStore: taskStore,
		publisher: publisher,
	}
}

// List returns all tasks, newest first.
func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.taskStore.List(ctx)
}

// Get returns a single task by id.
// Returns store.ErrTaskNotFound if it does not exist.
func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

// Create persists a new task owned by the given user and broadcasts a
// taskCreated event. Status defaults to pending.
func (s *TaskService) Create(ctx context.Context, title, description string, userID uuid.UUID) (*domain.Task, error) {
	task, err := domain.NewTask(title, description, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	event, err := events.NewTaskCreated(task)
	s.broadcast(ctx, event, err)
	return task, nil
}

// Update merges the supplied fields into the task and broadcasts a
// taskUpdated event carrying the full updated record.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
	task, err := s.taskStore.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	event, err := events.NewTaskUpdated(task)
	s.broadcast(ctx, event, err)
	return task, nil
}

// Delete permanently removes the task and broadcasts a taskDeleted event
// carrying the deleted id.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return err
	}

	event, err := events.NewTaskDeleted(id)
	s.broadcast(ctx, event, err)
	return nil
}

// broadcast publishes an event, logging rather than failing the mutation
// if the event could not be built. Delivery itself is fire-and-forget.
func (s *TaskService) broadcast(ctx context.Context, event *events.TaskEvent, err error) {
	log := logger.FromContext(ctx)

	if err != nil {
		log.Error("failed to build broadcast event", "error", err)
		return
	}

	s.publisher.Publish(ctx, event)
}
