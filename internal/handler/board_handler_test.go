package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/handler"
	"github.com/gurkanbulca/kanban/internal/models"
	"github.com/gurkanbulca/kanban/internal/repository"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func setup(t *testing.T) (*echo.Echo, *board.Store) {
	t.Helper()
	slot := repository.NewFileSlot(filepath.Join(t.TempDir(), "kanban.json"))
	store := board.New(models.DefaultCollection(), slot)
	h := handler.NewBoardHandler(store, nil, zerolog.Nop())
	return handler.NewServer(h, zerolog.Nop()), store
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealthHandler(t *testing.T) {
	e, _ := setup(t)
	rec, env := do(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestCreateTaskHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "created", body: `{"title":"Fix bug","priority":"high","labels":["Bug"]}`, wantCode: http.StatusCreated},
		{name: "blank title", body: `{"title":"  "}`, wantCode: http.StatusBadRequest},
		{name: "bad priority", body: `{"title":"x","priority":"urgent"}`, wantCode: http.StatusBadRequest},
		{name: "bad due date", body: `{"title":"x","dueDate":"soon"}`, wantCode: http.StatusBadRequest},
		{name: "malformed json", body: `{"title":`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, store := setup(t)
			rec, env := do(t, e, http.MethodPost, "/api/tasks", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusCreated {
				assert.False(t, env.Success)
				assert.Empty(t, store.Snapshot().Tasks)
				return
			}

			assert.True(t, env.Success)
			var task struct {
				ID       string   `json:"id"`
				Status   string   `json:"status"`
				Priority string   `json:"priority"`
				Labels   []string `json:"labels"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &task))
			assert.NotEmpty(t, task.ID)
			assert.Equal(t, "todo", task.Status)
			assert.Equal(t, "high", task.Priority)
			assert.Equal(t, []string{"Bug"}, task.Labels)
		})
	}
}

func TestGetTaskHandler(t *testing.T) {
	e, store := setup(t)
	task, err := store.AddTask(context.Background(), models.TaskInput{Title: "Fix bug"})
	require.NoError(t, err)

	rec, env := do(t, e, http.MethodGet, "/api/tasks/"+task.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"title":"Fix bug"`)

	rec, env = do(t, e, http.MethodGet, "/api/tasks/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestTaskLifecycleHandlers(t *testing.T) {
	e, store := setup(t)
	task, err := store.AddTask(context.Background(), models.TaskInput{Title: "Fix bug", Labels: []string{"Bug"}})
	require.NoError(t, err)

	rec, env := do(t, e, http.MethodPut, "/api/tasks/"+task.ID+"/status", `{"status":"inProgress"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":true}`, string(env.Data))

	rec, _ = do(t, e, http.MethodPut, "/api/tasks/"+task.ID+"/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, e, http.MethodPut, "/api/tasks/missing/status", `{"status":"done"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updated":false}`, string(env.Data))

	rec, env = do(t, e, http.MethodPatch, "/api/tasks/"+task.ID, `{"title":"Fix crash","labels":[]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"updated":true`)

	got, ok := store.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, "Fix crash", got.Title)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Empty(t, got.Labels)

	rec, _ = do(t, e, http.MethodPatch, "/api/tasks/"+task.ID, `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, e, http.MethodDelete, "/api/tasks/"+task.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))

	_, env = do(t, e, http.MethodDelete, "/api/tasks/"+task.ID, "")
	assert.JSONEq(t, `{"deleted":false}`, string(env.Data))
}

func TestLabelHandlers(t *testing.T) {
	e, store := setup(t)
	task, err := store.AddTask(context.Background(), models.TaskInput{Title: "Fix bug", Labels: []string{"Bug", "Needs Review"}})
	require.NoError(t, err)

	rec, env := do(t, e, http.MethodGet, "/api/labels", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"labels":["Bug","Feature","Enhancement","Documentation"]}`, string(env.Data))

	rec, _ = do(t, e, http.MethodPost, "/api/labels", `{"name":"Needs Review"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env = do(t, e, http.MethodPost, "/api/labels", `{"name":"Needs Review"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"added":false`)

	rec, _ = do(t, e, http.MethodPost, "/api/labels", `{"name":" "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, e, http.MethodDelete, "/api/labels/Needs%20Review", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"deleted":true`)

	got, ok := store.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"Bug"}, got.Labels)
	assert.NotContains(t, store.Labels(), "Needs Review")
}

func TestGetBoardHandler(t *testing.T) {
	e, store := setup(t)
	_, err := store.AddTask(context.Background(), models.TaskInput{Title: "Fix bug"})
	require.NoError(t, err)

	rec, env := do(t, e, http.MethodGet, "/api/board", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Columns []struct {
			Title string            `json:"title"`
			Tasks []json.RawMessage `json:"tasks"`
		} `json:"columns"`
		Labels []string `json:"labels"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.Len(t, resp.Columns, 3)
	assert.Equal(t, "To Do", resp.Columns[0].Title)
	assert.Len(t, resp.Columns[0].Tasks, 1)
	assert.Empty(t, resp.Columns[1].Tasks)
	assert.Len(t, resp.Labels, 4)
}

func TestExportBoardHandler(t *testing.T) {
	slot := repository.NewFileSlot(filepath.Join(t.TempDir(), "kanban.json"))
	store := board.New(models.DefaultCollection(), slot)
	_, err := store.AddTask(context.Background(), models.TaskInput{Title: "Fix bug"})
	require.NoError(t, err)

	h := handler.NewBoardHandler(store, nil, zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/board/export.xlsx", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if assert.NoError(t, h.ExportBoardHandler(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), time.Now().UTC().Format("20060102"))

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("To Do")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Fix bug", rows[1][0])
	}
}

func TestGetTaskHandler_DirectContext(t *testing.T) {
	slot := repository.NewFileSlot(filepath.Join(t.TempDir(), "kanban.json"))
	store := board.New(models.DefaultCollection(), slot)
	task, err := store.AddTask(context.Background(), models.TaskInput{Title: "Fix bug"})
	require.NoError(t, err)

	h := handler.NewBoardHandler(store, nil, zerolog.Nop())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/tasks/:id")
	c.SetParamNames("id")
	c.SetParamValues(task.ID)

	require.NoError(t, h.GetTaskHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), task.ID)
}
