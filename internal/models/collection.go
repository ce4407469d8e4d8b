// internal/models/collection.go
package models

import (
	"errors"
	"fmt"
)

// DefaultLabels seed a board that has never been saved.
var DefaultLabels = []string{"Bug", "Feature", "Enhancement", "Documentation"}

// Collection is the aggregate persisted as one document: every task and
// every label on the board.
type Collection struct {
	Tasks  []Task   `json:"tasks"`
	Labels []string `json:"labels"`
}

// DefaultCollection returns an empty board with the default labels.
func DefaultCollection() *Collection {
	return &Collection{
		Tasks:  []Task{},
		Labels: append([]string(nil), DefaultLabels...),
	}
}

// Clone deep-copies the collection.
func (c *Collection) Clone() *Collection {
	out := &Collection{
		Tasks:  make([]Task, len(c.Tasks)),
		Labels: append(make([]string, 0, len(c.Labels)), c.Labels...),
	}
	for i, t := range c.Tasks {
		out.Tasks[i] = t.Clone()
	}
	return out
}

// Normalize replaces nil slices with empty ones so that the document always
// carries "tasks": [] and "labels": [].
func (c *Collection) Normalize() {
	if c.Tasks == nil {
		c.Tasks = []Task{}
	}
	if c.Labels == nil {
		c.Labels = []string{}
	}
	for i := range c.Tasks {
		if c.Tasks[i].Labels == nil {
			c.Tasks[i].Labels = []string{}
		}
	}
}

// IndexOf returns the position of the task with the given id, or -1.
func (c *Collection) IndexOf(id string) int {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// HasLabel reports whether name is in the label list.
func (c *Collection) HasLabel(name string) bool {
	for _, l := range c.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// ByStatus returns copies of the tasks in the given column, in collection
// order.
func (c *Collection) ByStatus(status Status) []Task {
	out := []Task{}
	for _, t := range c.Tasks {
		if t.Status == status {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Validate checks the aggregate invariants: unique non-empty task ids, known
// status and priority values, and a duplicate-free label list.
func (c *Collection) Validate() error {
	var errs []error
	ids := make(map[string]struct{}, len(c.Tasks))
	for i, t := range c.Tasks {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("task %d: empty id", i))
		} else if _, dup := ids[t.ID]; dup {
			errs = append(errs, fmt.Errorf("task %d: duplicate id %q", i, t.ID))
		}
		ids[t.ID] = struct{}{}
		if !t.Status.Valid() {
			errs = append(errs, fmt.Errorf("task %q: invalid status %q", t.ID, t.Status))
		}
		if !t.Priority.Valid() {
			errs = append(errs, fmt.Errorf("task %q: invalid priority %q", t.ID, t.Priority))
		}
	}
	seen := make(map[string]struct{}, len(c.Labels))
	for _, l := range c.Labels {
		if _, dup := seen[l]; dup {
			errs = append(errs, fmt.Errorf("duplicate label %q", l))
		}
		seen[l] = struct{}{}
	}
	return errors.Join(errs...)
}
