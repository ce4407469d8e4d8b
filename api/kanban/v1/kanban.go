// api/kanban/v1/kanban.go
package kanbanv1

import "time"

// Task status values on the wire.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "inProgress"
	TaskStatusDone       = "done"
)

// Priority values on the wire.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	DueDate     string    `json:"dueDate,omitempty"`
	Labels      []string  `json:"labels"`
	Overdue     bool      `json:"overdue"`
}

type Column struct {
	Status string  `json:"status"`
	Title  string  `json:"title"`
	Tasks  []*Task `json:"tasks"`
}

type GetBoardRequest struct{}

type GetBoardResponse struct {
	Columns []*Column `json:"columns"`
	Labels  []string  `json:"labels"`
}

type GetTaskRequest struct {
	Id string `json:"id"`
}

type GetTaskResponse struct {
	Task  *Task `json:"task,omitempty"`
	Found bool  `json:"found"`
}

type AddTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
	Labels      []string `json:"labels,omitempty"`
}

type AddTaskResponse struct {
	Task *Task `json:"task"`
}

type UpdateTaskStatusRequest struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}

type UpdateTaskStatusResponse struct {
	Updated bool `json:"updated"`
}

// UpdateTaskRequest overwrites only the fields that are set. An empty
// DueDate clears the deadline; an empty Labels slice clears the labels.
type UpdateTaskRequest struct {
	Id          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Labels      *[]string `json:"labels,omitempty"`
}

type UpdateTaskResponse struct {
	Task    *Task `json:"task,omitempty"`
	Updated bool  `json:"updated"`
}

type DeleteTaskRequest struct {
	Id string `json:"id"`
}

type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
}

type ListLabelsRequest struct{}

type ListLabelsResponse struct {
	Labels []string `json:"labels"`
}

type AddLabelRequest struct {
	Name string `json:"name"`
}

type AddLabelResponse struct {
	Added  bool     `json:"added"`
	Labels []string `json:"labels"`
}

type DeleteLabelRequest struct {
	Name string `json:"name"`
}

type DeleteLabelResponse struct {
	Deleted bool     `json:"deleted"`
	Labels  []string `json:"labels"`
}
