// internal/cli/task.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Description string
	Priority    string
	DueDate     string
	Labels      []string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "add <title>",
		Short:   "Create a task in the To Do column",
		Example: `  kanban add "Fix bug" --priority high --due 2024-03-15 --label Bug`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.AddTask(ctx, &kanbanv1.AddTaskRequest{
					Title:       args[0],
					Description: opts.Description,
					Priority:    opts.Priority,
					DueDate:     opts.DueDate,
					Labels:      opts.Labels,
				})
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), resp.Task)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", taskLine(resp.Task))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "medium", "priority (low|medium|high)")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVarP(&opts.Labels, "label", "l", nil, "label name, repeatable")

	return cmd
}

// NewMoveCommand creates the move command.
func NewMoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "move <task-id> <status>",
		Short: "Move a task to another column (todo|inProgress|done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.UpdateTaskStatus(ctx, &kanbanv1.UpdateTaskStatusRequest{Id: args[0], Status: args[1]})
				if err != nil {
					return err
				}
				return reportChange(cmd, opts, resp, resp.Updated, "Moved "+args[0], "task "+args[0]+" not found")
			})
		},
	}
}

// NewEditCommand creates the edit command. Only flags given on the command
// line are sent.
func NewEditCommand(opts *RootOptions) *cobra.Command {
	var (
		title, description, status, priority, due string
		labels                                    []string
	)

	cmd := &cobra.Command{
		Use:     "edit <task-id>",
		Short:   "Change fields of a task",
		Example: `  kanban edit 3f2a... --title "Fix crash" --due ""`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &kanbanv1.UpdateTaskRequest{Id: args[0]}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("status") {
				req.Status = &status
			}
			if flags.Changed("priority") {
				req.Priority = &priority
			}
			if flags.Changed("due") {
				req.DueDate = &due
			}
			if flags.Changed("labels") {
				req.Labels = &labels
			}

			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.UpdateTask(ctx, req)
				if err != nil {
					return err
				}
				if !resp.Updated {
					return fmt.Errorf("task %s not found", args[0])
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), resp.Task)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", taskLine(resp.Task))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "new priority")
	cmd.Flags().StringVar(&due, "due", "", "new due date, empty to clear")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "replacement label list, empty to clear")

	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.DeleteTask(ctx, &kanbanv1.DeleteTaskRequest{Id: args[0]})
				if err != nil {
					return err
				}
				return reportChange(cmd, opts, resp, resp.Deleted, "Deleted "+args[0], "task "+args[0]+" not found")
			})
		},
	}
}

// reportChange prints the outcome of a boolean mutation.
func reportChange(cmd *cobra.Command, opts *RootOptions, resp interface{}, changed bool, done, noop string) error {
	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), resp)
	}
	if changed {
		fmt.Fprintln(cmd.OutOrStdout(), done)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), noop)
	}
	return nil
}
