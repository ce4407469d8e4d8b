// internal/cli/root.go

// Package cli implements the kanban command line client.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Addr    string
	Format  string // "json" | "text"
	Timeout time.Duration

	dial Dialer
}

// Dialer connects to the server and returns a client plus its closer.
type Dialer func(addr string) (kanbanv1.KanbanServiceClient, func() error, error)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kanban CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(dialGRPC)
}

func newRootCommand(dial Dialer) *cobra.Command {
	opts := &RootOptions{dial: dial}

	cmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban board client",
		Long:  "Manage tasks and labels on a kanban board served over gRPC.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Addr, "addr", "localhost:50051", "gRPC server address")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 10*time.Second, "request timeout")

	cmd.AddCommand(NewBoardCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewMoveCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewLabelsCommand(opts))
	cmd.AddCommand(NewLabelCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// withClient dials, runs fn under the request timeout and closes the
// connection.
func (o *RootOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, c kanbanv1.KanbanServiceClient) error) error {
	client, closeFn, err := o.dial(o.Addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", o.Addr, err)
	}
	defer closeFn()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.Timeout)
	defer cancel()
	return fn(ctx, client)
}

func dialGRPC(addr string) (kanbanv1.KanbanServiceClient, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return kanbanv1.NewKanbanServiceClient(conn), conn.Close, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
