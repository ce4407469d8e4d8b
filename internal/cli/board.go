// internal/cli/board.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

// NewBoardCommand creates the board command.
func NewBoardCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show all columns with their tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.GetBoard(ctx, &kanbanv1.GetBoardRequest{})
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), resp)
				}
				renderBoard(cmd.OutOrStdout(), resp)
				return nil
			})
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.GetTask(ctx, &kanbanv1.GetTaskRequest{Id: args[0]})
				if err != nil {
					return err
				}
				if !resp.Found {
					return fmt.Errorf("task %s not found", args[0])
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), resp.Task)
				}
				renderTask(cmd.OutOrStdout(), resp.Task)
				return nil
			})
		},
	}
}

// NewLabelsCommand creates the labels command.
func NewLabelsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the board labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.ListLabels(ctx, &kanbanv1.ListLabelsRequest{})
				if err != nil {
					return err
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), resp)
				}
				for _, l := range resp.Labels {
					fmt.Fprintln(cmd.OutOrStdout(), l)
				}
				return nil
			})
		},
	}
}
