// internal/service/test_helpers.go
package service

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/models"
	"github.com/gurkanbulca/kanban/internal/repository"
)

const bufSize = 1024 * 1024

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// TestHelpers provides common test utilities
type TestHelpers struct {
	t     *testing.T
	Store *board.Store
	Slot  *repository.FileSlot
}

// NewTestHelpers creates a store backed by a file slot in a temp dir.
func NewTestHelpers(t *testing.T) *TestHelpers {
	t.Helper()
	slot := repository.NewFileSlot(filepath.Join(t.TempDir(), "kanban.json"))
	store := board.New(models.DefaultCollection(), slot,
		board.WithClock(func() time.Time { return testNow }))
	return &TestHelpers{t: t, Store: store, Slot: slot}
}

// NewService returns a BoardService with a fixed clock.
func (h *TestHelpers) NewService() *BoardService {
	svc := NewBoardService(h.Store)
	svc.now = func() time.Time { return testNow }
	return svc
}

// Dial serves the service over an in-memory listener and returns a client.
func (h *TestHelpers) Dial(opts ...grpc.ServerOption) kanbanv1.KanbanServiceClient {
	h.t.Helper()
	lis := bufconn.Listen(bufSize)

	srv := grpc.NewServer(opts...)
	kanbanv1.RegisterKanbanServiceServer(srv, h.NewService())
	go func() { _ = srv.Serve(lis) }()
	h.t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(h.t, err)
	h.t.Cleanup(func() { _ = conn.Close() })

	return kanbanv1.NewKanbanServiceClient(conn)
}

// AddTask creates a task directly on the store.
func (h *TestHelpers) AddTask(title string, labels ...string) models.Task {
	h.t.Helper()
	task, err := h.Store.AddTask(context.Background(), models.TaskInput{Title: title, Labels: labels})
	require.NoError(h.t, err)
	return task
}

func strPtr(s string) *string { return &s }
