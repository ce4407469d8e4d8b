package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/models"
)

func TestBoardToXLSX(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	coll := &models.Collection{
		Tasks: []models.Task{
			{
				ID:          "1",
				Title:       "Fix bug",
				Description: "crash on save",
				Status:      models.StatusTodo,
				Priority:    models.PriorityHigh,
				CreatedAt:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
				DueDate:     "2024-03-05",
				Labels:      []string{"Bug", "Urgent"},
			},
			{
				ID:        "2",
				Title:     "Ship",
				Status:    models.StatusDone,
				Priority:  models.PriorityLow,
				CreatedAt: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
				Labels:    []string{},
			},
		},
		Labels: []string{"Bug", "Feature"},
	}

	data, err := BoardToXLSX(board.ColumnsOf(coll), coll.Labels, now)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"To Do", "In Progress", "Done", "Labels"}, f.GetSheetList())

	todo, err := f.GetRows("To Do")
	require.NoError(t, err)
	require.Len(t, todo, 2)
	assert.Equal(t, Header, todo[0])
	assert.Equal(t, []string{"Fix bug", "crash on save", "high", "2024-03-05", "Yes", "Bug, Urgent", "2024-03-01T09:30:00Z"}, todo[1])

	inProgress, err := f.GetRows("In Progress")
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)

	done, err := f.GetRows("Done")
	require.NoError(t, err)
	require.Len(t, done, 2)
	assert.Equal(t, "Ship", done[1][0])
	assert.Equal(t, "No", done[1][4])

	labels, err := f.GetRows(LabelsSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Label"}, {"Bug"}, {"Feature"}}, labels)
}

func TestBoardToXLSX_EmptyBoard(t *testing.T) {
	data, err := BoardToXLSX(nil, nil, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{LabelsSheet}, f.GetSheetList())
}
