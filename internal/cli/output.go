// internal/cli/output.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderBoard prints the columns in order followed by the label list.
func renderBoard(w io.Writer, board *kanbanv1.GetBoardResponse) {
	for _, col := range board.Columns {
		fmt.Fprintf(w, "== %s (%d) ==\n", col.Title, len(col.Tasks))
		for _, t := range col.Tasks {
			fmt.Fprintln(w, "  "+taskLine(t))
		}
	}
	fmt.Fprintf(w, "Labels: %s\n", strings.Join(board.Labels, ", "))
}

func taskLine(t *kanbanv1.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s (%s", t.Id, t.Title, t.Priority)
	if t.DueDate != "" {
		fmt.Fprintf(&b, ", due %s", t.DueDate)
	}
	if t.Overdue {
		b.WriteString(", overdue")
	}
	b.WriteString(")")
	for _, l := range t.Labels {
		b.WriteString(" #" + l)
	}
	return b.String()
}

func renderTask(w io.Writer, t *kanbanv1.Task) {
	due := t.DueDate
	if due == "" {
		due = "-"
	} else if t.Overdue {
		due += " (overdue)"
	}
	fmt.Fprintf(w, "ID:          %s\n", t.Id)
	fmt.Fprintf(w, "Title:       %s\n", t.Title)
	fmt.Fprintf(w, "Status:      %s\n", t.Status)
	fmt.Fprintf(w, "Priority:    %s\n", t.Priority)
	fmt.Fprintf(w, "Created:     %s\n", t.CreatedAt.UTC().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Due:         %s\n", due)
	fmt.Fprintf(w, "Labels:      %s\n", strings.Join(t.Labels, ", "))
	if t.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", t.Description)
	}
}
