// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
)

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxLabelsPerTask     int
	MaxLabelLength       int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxTitleLength:       200,
		MaxDescriptionLength: 5000,
		MaxLabelsPerTask:     20,
		MaxLabelLength:       50,
	}
}

// ValidationInterceptor rejects malformed requests before they reach the
// board.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{
		config: config,
	}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := v.Validate(req); err != nil {
			return nil, err
		}

		return handler(ctx, req)
	}
}

// Validate checks a request message. Unknown message types pass.
func (v *ValidationInterceptor) Validate(req interface{}) error {
	var errs []string

	switch r := req.(type) {
	case *kanbanv1.AddTaskRequest:
		errs = v.validateAddTask(r)
	case *kanbanv1.UpdateTaskRequest:
		errs = v.validateUpdateTask(r)
	case *kanbanv1.UpdateTaskStatusRequest:
		if r.Id == "" {
			errs = append(errs, "task ID is required")
		}
		if strings.TrimSpace(r.Status) == "" {
			errs = append(errs, "status is required")
		}
	case *kanbanv1.GetTaskRequest:
		if r.Id == "" {
			errs = append(errs, "task ID is required")
		}
	case *kanbanv1.DeleteTaskRequest:
		if r.Id == "" {
			errs = append(errs, "task ID is required")
		}
	case *kanbanv1.AddLabelRequest:
		errs = v.validateLabelName(r.Name, errs)
	case *kanbanv1.DeleteLabelRequest:
		if r.Name == "" {
			errs = append(errs, "label name is required")
		}
	}

	if len(errs) > 0 {
		return status.Error(codes.InvalidArgument, strings.Join(errs, "; "))
	}
	return nil
}

func (v *ValidationInterceptor) validateAddTask(req *kanbanv1.AddTaskRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	} else {
		errs = v.validateTitle(req.Title, errs)
	}
	errs = v.validateDescription(req.Description, errs)
	errs = v.validateLabels(req.Labels, errs)

	return errs
}

func (v *ValidationInterceptor) validateUpdateTask(req *kanbanv1.UpdateTaskRequest) []string {
	var errs []string

	if req.Id == "" {
		errs = append(errs, "task ID is required")
	}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			errs = append(errs, "title cannot be empty")
		} else {
			errs = v.validateTitle(*req.Title, errs)
		}
	}
	if req.Description != nil {
		errs = v.validateDescription(*req.Description, errs)
	}
	if req.Labels != nil {
		errs = v.validateLabels(*req.Labels, errs)
	}

	return errs
}

// Helper validation functions

func (v *ValidationInterceptor) validateTitle(title string, errs []string) []string {
	if utf8.RuneCountInString(title) > v.config.MaxTitleLength {
		errs = append(errs, fmt.Sprintf("title too long (max %d characters)", v.config.MaxTitleLength))
	}
	return errs
}

func (v *ValidationInterceptor) validateDescription(desc string, errs []string) []string {
	if utf8.RuneCountInString(desc) > v.config.MaxDescriptionLength {
		errs = append(errs, fmt.Sprintf("description too long (max %d characters)", v.config.MaxDescriptionLength))
	}
	return errs
}

func (v *ValidationInterceptor) validateLabels(labels []string, errs []string) []string {
	if len(labels) > v.config.MaxLabelsPerTask {
		errs = append(errs, fmt.Sprintf("too many labels (max %d)", v.config.MaxLabelsPerTask))
	}
	for _, l := range labels {
		if utf8.RuneCountInString(l) > v.config.MaxLabelLength {
			errs = append(errs, fmt.Sprintf("label too long (max %d characters)", v.config.MaxLabelLength))
			break
		}
	}
	return errs
}

func (v *ValidationInterceptor) validateLabelName(name string, errs []string) []string {
	if strings.TrimSpace(name) == "" {
		return append(errs, "label name is required")
	}
	if utf8.RuneCountInString(name) > v.config.MaxLabelLength {
		errs = append(errs, fmt.Sprintf("label too long (max %d characters)", v.config.MaxLabelLength))
	}
	return errs
}
