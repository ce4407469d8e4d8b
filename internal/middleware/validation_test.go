package middleware

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

func strPtr(s string) *string { return &s }

func TestValidationInterceptor_Validate(t *testing.T) {
	v := NewValidationInterceptor(nil)
	tooManyLabels := make([]string, 21)
	for i := range tooManyLabels {
		tooManyLabels[i] = "l"
	}

	tests := []struct {
		name    string
		req     interface{}
		wantErr string
	}{
		{name: "valid add", req: &kanbanv1.AddTaskRequest{Title: "Fix bug", Labels: []string{"Bug"}}},
		{name: "blank title", req: &kanbanv1.AddTaskRequest{Title: "  "}, wantErr: "title is required"},
		{name: "long title", req: &kanbanv1.AddTaskRequest{Title: strings.Repeat("a", 201)}, wantErr: "title too long"},
		{name: "unicode title at limit", req: &kanbanv1.AddTaskRequest{Title: strings.Repeat("ü", 200)}},
		{name: "long description", req: &kanbanv1.AddTaskRequest{Title: "x", Description: strings.Repeat("d", 5001)}, wantErr: "description too long"},
		{name: "too many labels", req: &kanbanv1.AddTaskRequest{Title: "x", Labels: tooManyLabels}, wantErr: "too many labels"},
		{name: "long label", req: &kanbanv1.AddTaskRequest{Title: "x", Labels: []string{strings.Repeat("l", 51)}}, wantErr: "label too long"},
		{name: "update without id", req: &kanbanv1.UpdateTaskRequest{}, wantErr: "task ID is required"},
		{name: "update blank title", req: &kanbanv1.UpdateTaskRequest{Id: "1", Title: strPtr("")}, wantErr: "title cannot be empty"},
		{name: "update untouched fields", req: &kanbanv1.UpdateTaskRequest{Id: "1"}},
		{name: "status without id", req: &kanbanv1.UpdateTaskStatusRequest{Status: "done"}, wantErr: "task ID is required"},
		{name: "status blank", req: &kanbanv1.UpdateTaskStatusRequest{Id: "1"}, wantErr: "status is required"},
		{name: "get without id", req: &kanbanv1.GetTaskRequest{}, wantErr: "task ID is required"},
		{name: "delete without id", req: &kanbanv1.DeleteTaskRequest{}, wantErr: "task ID is required"},
		{name: "blank label", req: &kanbanv1.AddLabelRequest{Name: " "}, wantErr: "label name is required"},
		{name: "delete label without name", req: &kanbanv1.DeleteLabelRequest{}, wantErr: "label name is required"},
		{name: "board request", req: &kanbanv1.GetBoardRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, codes.InvalidArgument, status.Code(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidationInterceptor_UnaryStopsInvalidRequests(t *testing.T) {
	v := NewValidationInterceptor(&ValidationConfig{
		MaxTitleLength:       5,
		MaxDescriptionLength: 10,
		MaxLabelsPerTask:     1,
		MaxLabelLength:       3,
	})
	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return "ok", nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: kanbanv1.KanbanService_AddTask_FullMethodName}

	_, err := v.Unary()(context.Background(), &kanbanv1.AddTaskRequest{Title: "too long"}, info, handler)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.False(t, called)

	resp, err := v.Unary()(context.Background(), &kanbanv1.AddTaskRequest{Title: "short"}, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.True(t, called)
}
