// internal/cli/label.go
package cli

import (
	"context"

	"github.com/spf13/cobra"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

// NewLabelCommand creates the label command group.
func NewLabelCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Add or delete board labels",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.AddLabel(ctx, &kanbanv1.AddLabelRequest{Name: args[0]})
				if err != nil {
					return err
				}
				return reportChange(cmd, opts, resp, resp.Added, "Added label "+args[0], "label "+args[0]+" already exists")
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a label and remove it from every task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.DeleteLabel(ctx, &kanbanv1.DeleteLabelRequest{Name: args[0]})
				if err != nil {
					return err
				}
				return reportChange(cmd, opts, resp, resp.Deleted, "Deleted label "+args[0], "label "+args[0]+" not found")
			})
		},
	})

	return cmd
}
