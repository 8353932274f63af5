package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/taskboard-api/internal/domain"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates task with pending status", func(t *testing.T) {
		t.Parallel()
		task, err := domain.NewTask("Buy milk", "Two liters, whole", userID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, "Two liters, whole", task.Description)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.Equal(t, userID, task.UserID)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("", "desc", userID)
		assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("title", "", userID)
		assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		t.Parallel()
		_, err := domain.NewTask("title", "desc", uuid.Nil)
		assert.ErrorIs(t, err, domain.ErrEmptyTaskOwner)
	})
}

func TestTaskStatusIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.TaskStatusPending.IsValid())
	assert.True(t, domain.TaskStatusInProgress.IsValid())
	assert.True(t, domain.TaskStatusCompleted.IsValid())
	assert.False(t, domain.TaskStatus("done").IsValid())
	assert.False(t, domain.TaskStatus("").IsValid())
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }
	statusPtr := func(s domain.TaskStatus) *domain.TaskStatus { return &s }

	t.Run("IsEmpty", func(t *testing.T) {
		t.Parallel()
		assert.True(t, domain.TaskUpdate{}.IsEmpty())
		assert.False(t, domain.TaskUpdate{Title: strPtr("x")}.IsEmpty())
	})

	t.Run("validate rejects empty supplied fields", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, domain.TaskUpdate{Title: strPtr("")}.Validate(), domain.ErrEmptyTitle)
		assert.ErrorIs(t, domain.TaskUpdate{Description: strPtr("")}.Validate(), domain.ErrEmptyDescription)
		assert.ErrorIs(t,
			domain.TaskUpdate{Status: statusPtr("bogus")}.Validate(),
			domain.ErrInvalidStatus)
	})

	t.Run("apply leaves absent fields untouched", func(t *testing.T) {
		t.Parallel()
		task, err := domain.NewTask("Original title", "Original description", uuid.New())
		require.NoError(t, err)

		update := domain.TaskUpdate{Status: statusPtr(domain.TaskStatusCompleted)}
		update.Apply(task)

		assert.Equal(t, "Original title", task.Title)
		assert.Equal(t, "Original description", task.Description)
		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	})

	t.Run("apply merges all supplied fields", func(t *testing.T) {
		t.Parallel()
		task, err := domain.NewTask("Original title", "Original description", uuid.New())
		require.NoError(t, err)

		update := domain.TaskUpdate{
			Title:       strPtr("New title"),
			Description: strPtr("New description"),
			Status:      statusPtr(domain.TaskStatusInProgress),
		}
		update.Apply(task)

		assert.Equal(t, "New title", task.Title)
		assert.Equal(t, "New description", task.Description)
		assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	})
}
