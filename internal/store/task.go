package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskboard/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if no such task exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns all tasks sorted by creation time, newest first.
	List(ctx context.Context) ([]*domain.Task, error)

	// Update merges the supplied fields into the stored task and returns
	// the updated record. Returns ErrTaskNotFound if no such task exists.
	Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)

	// Delete permanently removes a task.
	// Returns ErrTaskNotFound if no such task exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
