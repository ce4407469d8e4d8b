// internal/cli/export.go
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/models"
	"github.com/gurkanbulca/kanban/pkg/export"
)

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, c kanbanv1.KanbanServiceClient) error {
				resp, err := c.GetBoard(ctx, &kanbanv1.GetBoardRequest{})
				if err != nil {
					return err
				}
				data, err := export.BoardToXLSX(columnsFromProto(resp.Columns), resp.Labels, time.Now())
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "kanban.xlsx", "output file")

	return cmd
}

func columnsFromProto(cols []*kanbanv1.Column) []board.Column {
	out := make([]board.Column, 0, len(cols))
	for _, col := range cols {
		c := board.Column{
			Status: models.Status(col.Status),
			Title:  col.Title,
			Tasks:  make([]models.Task, 0, len(col.Tasks)),
		}
		for _, t := range col.Tasks {
			c.Tasks = append(c.Tasks, models.Task{
				ID:          t.Id,
				Title:       t.Title,
				Description: t.Description,
				Status:      models.Status(t.Status),
				Priority:    models.Priority(t.Priority),
				CreatedAt:   t.CreatedAt,
				DueDate:     t.DueDate,
				Labels:      t.Labels,
			})
		}
		out = append(out, c)
	}
	return out
}
