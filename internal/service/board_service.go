// internal/service/board_service.go
package service

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/models"
)

// BoardService exposes the board store over gRPC.
type BoardService struct {
	kanbanv1.UnimplementedKanbanServiceServer
	store *board.Store
	now   func() time.Time
}

func NewBoardService(store *board.Store) *BoardService {
	return &BoardService{
		store: store,
		now:   time.Now,
	}
}

// GetBoard returns the three columns and the label list
func (s *BoardService) GetBoard(ctx context.Context, req *kanbanv1.GetBoardRequest) (*kanbanv1.GetBoardResponse, error) {
	snap := s.store.Snapshot()
	return &kanbanv1.GetBoardResponse{
		Columns: ConvertColumnsToProto(board.ColumnsOf(snap), s.now()),
		Labels:  snap.Labels,
	}, nil
}

// GetTask retrieves a task by ID
func (s *BoardService) GetTask(ctx context.Context, req *kanbanv1.GetTaskRequest) (*kanbanv1.GetTaskResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	task, ok := s.store.Task(req.Id)
	if !ok {
		return &kanbanv1.GetTaskResponse{Found: false}, nil
	}
	return &kanbanv1.GetTaskResponse{
		Task:  ConvertTaskToProto(task, s.now()),
		Found: true,
	}, nil
}

// AddTask creates a new task in the To Do column
func (s *BoardService) AddTask(ctx context.Context, req *kanbanv1.AddTaskRequest) (*kanbanv1.AddTaskResponse, error) {
	input := models.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
	}
	if req.Priority != "" {
		p, err := models.ParsePriority(req.Priority)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		input.Priority = p
	}

	task, err := s.store.AddTask(ctx, input)
	if err != nil {
		return nil, toStatus(err, "failed to add task")
	}

	return &kanbanv1.AddTaskResponse{
		Task: ConvertTaskToProto(task, s.now()),
	}, nil
}

// UpdateTaskStatus moves a task to another column
func (s *BoardService) UpdateTaskStatus(ctx context.Context, req *kanbanv1.UpdateTaskStatusRequest) (*kanbanv1.UpdateTaskStatusResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	st, err := models.ParseStatus(req.Status)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := s.store.UpdateTaskStatus(ctx, req.Id, st)
	if err != nil {
		return nil, toStatus(err, "failed to update task status")
	}
	return &kanbanv1.UpdateTaskStatusResponse{Updated: updated}, nil
}

// UpdateTask overwrites the provided fields of a task
func (s *BoardService) UpdateTask(ctx context.Context, req *kanbanv1.UpdateTaskRequest) (*kanbanv1.UpdateTaskResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}

	patch := models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
	}
	if req.Status != nil {
		st, err := models.ParseStatus(*req.Status)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		patch.Status = &st
	}
	if req.Priority != nil {
		p, err := models.ParsePriority(*req.Priority)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		patch.Priority = &p
	}

	task, updated, err := s.store.UpdateTask(ctx, req.Id, patch)
	if err != nil {
		return nil, toStatus(err, "failed to update task")
	}
	if !updated {
		return &kanbanv1.UpdateTaskResponse{Updated: false}, nil
	}
	return &kanbanv1.UpdateTaskResponse{
		Task:    ConvertTaskToProto(task, s.now()),
		Updated: true,
	}, nil
}

// DeleteTask removes a task
func (s *BoardService) DeleteTask(ctx context.Context, req *kanbanv1.DeleteTaskRequest) (*kanbanv1.DeleteTaskResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	return &kanbanv1.DeleteTaskResponse{Deleted: s.store.DeleteTask(ctx, req.Id)}, nil
}

func (s *BoardService) ListLabels(ctx context.Context, req *kanbanv1.ListLabelsRequest) (*kanbanv1.ListLabelsResponse, error) {
	return &kanbanv1.ListLabelsResponse{Labels: s.store.Labels()}, nil
}

func (s *BoardService) AddLabel(ctx context.Context, req *kanbanv1.AddLabelRequest) (*kanbanv1.AddLabelResponse, error) {
	added, err := s.store.AddLabel(ctx, req.Name)
	if err != nil {
		return nil, toStatus(err, "failed to add label")
	}
	return &kanbanv1.AddLabelResponse{
		Added:  added,
		Labels: s.store.Labels(),
	}, nil
}

// DeleteLabel removes a label from the board and from every task
func (s *BoardService) DeleteLabel(ctx context.Context, req *kanbanv1.DeleteLabelRequest) (*kanbanv1.DeleteLabelResponse, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	return &kanbanv1.DeleteLabelResponse{
		Deleted: s.store.DeleteLabel(ctx, req.Name),
		Labels:  s.store.Labels(),
	}, nil
}

// Helper functions

// toStatus maps store validation errors to InvalidArgument.
func toStatus(err error, msg string) error {
	if board.IsValidationError(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Errorf(codes.Internal, "%s: %v", msg, err)
}

// ConvertTaskToProto renders a task for the wire, computing Overdue at now.
func ConvertTaskToProto(task models.Task, now time.Time) *kanbanv1.Task {
	labels := task.Labels
	if labels == nil {
		labels = []string{}
	}
	return &kanbanv1.Task{
		Id:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		Labels:      labels,
		Overdue:     task.Overdue(now),
	}
}

func ConvertColumnsToProto(cols []board.Column, now time.Time) []*kanbanv1.Column {
	out := make([]*kanbanv1.Column, len(cols))
	for i, col := range cols {
		tasks := make([]*kanbanv1.Task, len(col.Tasks))
		for j, t := range col.Tasks {
			tasks[j] = ConvertTaskToProto(t, now)
		}
		out[i] = &kanbanv1.Column{
			Status: string(col.Status),
			Title:  col.Title,
			Tasks:  tasks,
		}
	}
	return out
}
