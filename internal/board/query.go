// internal/board/query.go
package board

import (
	"github.com/gurkanbulca/kanban/internal/models"
)

// Column is one status lane of the board with its tasks in collection order.
type Column struct {
	Status models.Status
	Title  string
	Tasks  []models.Task
}

// Snapshot returns a deep copy of the current collection.
func (s *Store) Snapshot() *models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coll.Clone()
}

// Task returns a copy of the task with the id.
func (s *Store) Task(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.coll.IndexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.coll.Tasks[i].Clone(), true
}

// Labels returns the label list in insertion order.
func (s *Store) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]string, 0, len(s.coll.Labels)), s.coll.Labels...)
}

// Columns groups the tasks by status in display order: To Do, In Progress,
// Done.
func (s *Store) Columns() []Column {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ColumnsOf(s.coll)
}

// ColumnsOf groups a collection's tasks into the three board columns.
func ColumnsOf(c *models.Collection) []Column {
	cols := make([]Column, 0, len(models.Statuses))
	for _, st := range models.Statuses {
		cols = append(cols, Column{
			Status: st,
			Title:  st.Title(),
			Tasks:  c.ByStatus(st),
		})
	}
	return cols
}
