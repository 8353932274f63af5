package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Task validation errors.
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyTaskOwner   = errors.New("task must have an owner")
)

// TaskStatus is the progress state of a task.
type TaskStatus string

// Recognized task statuses.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is one of the recognized values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a single item on the shared task board.
//
// The owner is recorded once at creation and never re-validated on later
// operations: any authenticated user may update or delete any task. This
// is a deliberate shared-board policy, not an omission.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	UserID      uuid.UUID  `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTask creates a Task owned by the given user, generating a new UUID
// and creation timestamp. Status defaults to pending.
func NewTask(title, description string, userID uuid.UUID) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task holds consistent data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if t.Description == "" {
		return ErrEmptyDescription
	}

	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	return nil
}

// TaskUpdate describes a partial update to a task. Each field is
// independently optional: nil means "leave unchanged". An empty string in
// a non-nil field is rejected by Validate, mirroring creation rules.
type TaskUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no changes at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// Validate checks the supplied fields before they are merged into a task.
func (u TaskUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return ErrEmptyTitle
	}

	if u.Description != nil && *u.Description == "" {
		return ErrEmptyDescription
	}

	if u.Status != nil && !u.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

// Apply merges the supplied fields into the task, leaving absent fields
// untouched.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}

	if u.Description != nil {
		t.Description = *u.Description
	}

	if u.Status != nil {
		t.Status = *u.Status
	}
}
