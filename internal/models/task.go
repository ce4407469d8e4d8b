// internal/models/task.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the board column a task sits in.
type Status string

// Task status constants
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusDone       Status = "done"
)

// Priority of a task.
type Priority string

// Priority constants
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Statuses lists the columns in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the three board columns.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Title returns the column heading for the status.
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// ParseStatus accepts the wire value ("inProgress") as well as a few common
// spellings ("in_progress", "in-progress", "In Progress").
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.TrimSpace(s))) {
	case "todo":
		return StatusTodo, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// ParsePriority converts a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority: %q", s)
	}
}

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     string    `json:"dueDate,omitempty"`
	Labels      []string  `json:"labels"`
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	c := t
	c.Labels = append(make([]string, 0, len(t.Labels)), t.Labels...)
	return c
}

// HasLabel reports whether the task references the label name.
func (t Task) HasLabel(name string) bool {
	for _, l := range t.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// Overdue reports whether the task has a due date strictly before now.
// An unparsable due date is never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == "" {
		return false
	}
	due, err := ParseDueDate(t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

// ParseDueDate parses a due date in date-only (2006-01-02) or RFC 3339 form.
// Date-only values are midnight UTC.
func ParseDueDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return d, nil
}

// TaskInput carries the caller-supplied fields of a new task. Status is not
// part of it: new tasks always start in the To Do column.
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	Labels      []string
}

// TaskPatch holds the subset of fields to overwrite. Nil fields keep their
// prior value; a non-nil empty DueDate clears the deadline.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *string
	Labels      *[]string
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil && p.Labels == nil
}

// NormalizeLabels trims names, drops blanks and collapses duplicates while
// keeping first-occurrence order. The result is never nil.
func NormalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
