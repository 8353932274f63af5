package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/taskboard-api/internal/api"
	"github.com/taskboard/taskboard-api/internal/api/shared"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/mocks"
	"github.com/taskboard/taskboard-api/internal/service"
	"github.com/taskboard/taskboard-api/internal/service/auth"
)

type taskTestEnv struct {
	router    chi.Router
	taskStore *mocks.MockTaskStore
	publisher *mocks.MockPublisher
	claims    *auth.Claims
}

func newTaskTestEnv() *taskTestEnv {
	taskStore := mocks.NewMockTaskStore()
	publisher := &mocks.MockPublisher{}
	handler := api.NewTaskHandler(service.NewTaskService(taskStore, publisher))

	claims := &auth.Claims{
		UserID:   uuid.New(),
		Email:    "alice@example.com",
		Username: "alice",
	}

	// Stand-in for the auth middleware: attach a fixed verified identity.
	identity := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(shared.WithIdentity(r.Context(), claims)))
		})
	}

	router := chi.NewRouter()
	router.Route("/tasks", func(r chi.Router) {
		r.Use(identity)
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})

	return &taskTestEnv{
		router:    router,
		taskStore: taskStore,
		publisher: publisher,
		claims:    claims,
	}
}

func (env *taskTestEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *taskTestEnv) seedTask(t *testing.T, title, description string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, description, uuid.New())
	require.NoError(t, err)
	env.taskStore.Tasks[task.ID] = task
	return task
}

func TestTaskCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates task owned by the caller", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()

		body := map[string]string{"title": "Buy milk", "description": "Two liters"}
		w := env.request(t, http.MethodPost, "/tasks", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var task domain.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.Equal(t, env.claims.UserID, task.UserID)

		require.Len(t, env.publisher.Published(), 1)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()

		w := env.request(t, http.MethodPost, "/tasks", map[string]string{"description": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, env.publisher.Published())
	})
}

func TestTaskList(t *testing.T) {
	t.Parallel()

	env := newTaskTestEnv()
	env.seedTask(t, "First", "desc")
	env.seedTask(t, "Second", "desc")

	w := env.request(t, http.MethodGet, "/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []*domain.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)
}

func TestTaskGet(t *testing.T) {
	t.Parallel()

	t.Run("returns existing task", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()
		task := env.seedTask(t, "Buy milk", "Two liters")

		w := env.request(t, http.MethodGet, "/tasks/"+task.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, task.ID, got.ID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()

		w := env.request(t, http.MethodGet, "/tasks/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found", errorMessage(t, w))
	})

	t.Run("unparseable id returns 404", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()

		w := env.request(t, http.MethodGet, "/tasks/not-a-uuid", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Task not found", errorMessage(t, w))
	})
}

func TestTaskUpdate(t *testing.T) {
	t.Parallel()

	t.Run("partial update preserves absent fields", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()
		task := env.seedTask(t, "Buy milk", "Two liters")

		body := map[string]string{"status": "completed"}
		w := env.request(t, http.MethodPut, "/tasks/"+task.ID.String(), body)
		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Task
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Buy milk", got.Title)
		assert.Equal(t, "Two liters", got.Description)
		assert.Equal(t, domain.TaskStatusCompleted, got.Status)

		require.Len(t, env.publisher.Published(), 1)
	})

	t.Run("any authenticated caller may update any task", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()
		// Owned by a different, random user.
		task := env.seedTask(t, "Someone else's task", "desc")
		require.NotEqual(t, env.claims.UserID, task.UserID)

		body := map[string]string{"title": "Taken over"}
		w := env.request(t, http.MethodPut, "/tasks/"+task.ID.String(), body)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unrecognized status is rejected", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()
		task := env.seedTask(t, "Buy milk", "Two liters")

		body := map[string]string{"status": "done"}
		w := env.request(t, http.MethodPut, "/tasks/"+task.ID.String(), body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()

		body := map[string]string{"title": "x"}
		w := env.request(t, http.MethodPut, "/tasks/"+uuid.New().String(), body)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTaskDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes and confirms", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()
		task := env.seedTask(t, "Buy milk", "Two liters")

		w := env.request(t, http.MethodDelete, "/tasks/"+task.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.DeleteTaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Task deleted", resp.Message)
		assert.NotContains(t, env.taskStore.Tasks, task.ID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		t.Parallel()
		env := newTaskTestEnv()

		w := env.request(t, http.MethodDelete, "/tasks/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
