package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/kanban/internal/models"
)

// brokenSlot fails every operation.
type brokenSlot struct{ err error }

func (b brokenSlot) Read(ctx context.Context) ([]byte, error)     { return nil, b.err }
func (b brokenSlot) Write(ctx context.Context, data []byte) error { return b.err }
func (b brokenSlot) Close() error                                 { return nil }

func sampleCollection() *models.Collection {
	return &models.Collection{
		Tasks: []models.Task{
			{
				ID:          "t-1",
				Title:       "Fix bug",
				Description: "crash on save",
				Status:      models.StatusInProgress,
				Priority:    models.PriorityHigh,
				CreatedAt:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
				DueDate:     "2024-03-15",
				Labels:      []string{"Bug"},
			},
			{
				ID:          "t-2",
				Title:       "Write docs",
				Description: "",
				Status:      models.StatusTodo,
				Priority:    models.PriorityLow,
				CreatedAt:   time.Date(2024, 3, 2, 10, 0, 0, 123000000, time.UTC),
				Labels:      []string{},
			},
		},
		Labels: []string{"Bug", "Feature"},
	}
}

func generatedCollection(tasks, labels int) *models.Collection {
	statuses := models.Statuses
	priorities := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

	c := &models.Collection{Tasks: []models.Task{}, Labels: []string{}}
	for i := 0; i < labels; i++ {
		c.Labels = append(c.Labels, fmt.Sprintf("label-%d", i))
	}
	for i := 0; i < tasks; i++ {
		task := models.Task{
			ID:          fmt.Sprintf("id-%d", i),
			Title:       fmt.Sprintf("Task \"%d\" ünicode ✓", i),
			Description: fmt.Sprintf("line one\nline two %d", i),
			Status:      statuses[i%len(statuses)],
			Priority:    priorities[i%len(priorities)],
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
			Labels:      []string{},
		}
		if i%2 == 0 {
			task.DueDate = "2024-12-31"
		}
		if labels > 0 {
			task.Labels = append(task.Labels, c.Labels[i%labels])
		}
		c.Tasks = append(c.Tasks, task)
	}
	return c
}

func TestEncode_Golden(t *testing.T) {
	data, err := Encode(sampleCollection())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "collection", data)
}

func TestEncode_EmptyCollectionUsesArrays(t *testing.T) {
	data, err := Encode(&models.Collection{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tasks": [], "labels": []}`, string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		tasks  int
		labels int
	}{
		{name: "empty", tasks: 0, labels: 0},
		{name: "labels only", tasks: 0, labels: 4},
		{name: "tasks without labels", tasks: 5, labels: 0},
		{name: "many", tasks: 60, labels: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := NewFileSlot(filepath.Join(t.TempDir(), "board.json"))
			orig := generatedCollection(tt.tasks, tt.labels)

			require.NoError(t, Save(context.Background(), slot, orig))
			loaded := Load(context.Background(), slot, zerolog.Nop())

			assert.Equal(t, orig, loaded)
		})
	}
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "definitely not json"},
		{name: "truncated", data: `{"tasks":[{"id":"1"`},
		{name: "wrong shape", data: `{"tasks":"nope","labels":5}`},
		{name: "invalid status", data: `{"tasks":[{"id":"1","title":"x","description":"","status":"archived","priority":"low","createdAt":"2024-01-01T00:00:00Z","labels":[]}],"labels":[]}`},
		{name: "duplicate ids", data: `{"tasks":[{"id":"1","title":"x","description":"","status":"todo","priority":"low","createdAt":"2024-01-01T00:00:00Z","labels":[]},{"id":"1","title":"y","description":"","status":"todo","priority":"low","createdAt":"2024-01-01T00:00:00Z","labels":[]}],"labels":[]}`},
		{name: "null", data: `null`},
		{name: "empty object", data: `{}`},
		{name: "missing labels", data: `{"tasks":[]}`},
		{name: "null tasks", data: `{"tasks":null,"labels":["Bug"]}`},
		{name: "array", data: `[]`},
		{name: "duplicate labels", data: `{"tasks":[],"labels":["Bug","Bug"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "board.json")
			slot := NewFileSlot(path)
			require.NoError(t, slot.Write(context.Background(), []byte(tt.data)))

			got := Load(context.Background(), slot, zerolog.Nop())
			assert.Equal(t, models.DefaultCollection(), got)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		slot := NewFileSlot(filepath.Join(t.TempDir(), "absent.json"))
		assert.Equal(t, models.DefaultCollection(), Load(context.Background(), slot, zerolog.Nop()))
	})

	t.Run("read error", func(t *testing.T) {
		slot := brokenSlot{err: errors.New("disk on fire")}
		assert.Equal(t, models.DefaultCollection(), Load(context.Background(), slot, zerolog.Nop()))
	})
}

func TestDecode_RejectsNonCollection(t *testing.T) {
	for _, data := range []string{`null`, `{}`, `{"labels":[]}`} {
		_, err := Decode([]byte(data))
		assert.ErrorIs(t, err, ErrNotCollection, data)
	}
}

func TestLoad_KeepsEmptyLabelList(t *testing.T) {
	slot := NewFileSlot(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, slot.Write(context.Background(), []byte(`{"tasks":[],"labels":[]}`)))

	got := Load(context.Background(), slot, zerolog.Nop())
	assert.Equal(t, &models.Collection{Tasks: []models.Task{}, Labels: []string{}}, got)
}

func TestLoad_AcceptsOriginalBrowserDocument(t *testing.T) {
	// shape written by JSON.stringify in the browser build, including
	// millisecond timestamps and an empty dueDate
	doc := `{"tasks":[{"title":"Ship it","description":"","status":"done","priority":"medium","dueDate":"","labels":["Feature"],"id":"1700000000000","createdAt":"2023-11-14T22:13:20.000Z"}],"labels":["Bug","Feature"]}`
	slot := NewFileSlot(filepath.Join(t.TempDir(), "board.json"))
	require.NoError(t, slot.Write(context.Background(), []byte(doc)))

	got := Load(context.Background(), slot, zerolog.Nop())
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "1700000000000", got.Tasks[0].ID)
	assert.Equal(t, models.StatusDone, got.Tasks[0].Status)
	assert.True(t, got.Tasks[0].CreatedAt.Equal(time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)))
	assert.Equal(t, []string{"Bug", "Feature"}, got.Labels)
}

func TestSave_ReturnsWriteError(t *testing.T) {
	err := Save(context.Background(), brokenSlot{err: errors.New("quota exceeded")}, models.DefaultCollection())
	assert.ErrorContains(t, err, "quota exceeded")
}
