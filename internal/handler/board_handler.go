// internal/handler/board_handler.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/status"

	kanbanv1 "github.com/gurkanbulca/kanban/api/kanban/v1"
	"github.com/gurkanbulca/kanban/internal/board"
	"github.com/gurkanbulca/kanban/internal/middleware"
	"github.com/gurkanbulca/kanban/internal/models"
	"github.com/gurkanbulca/kanban/internal/service"
	"github.com/gurkanbulca/kanban/pkg/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BoardHandler struct {
	store     *board.Store
	validator *middleware.ValidationInterceptor
	log       zerolog.Logger
	now       func() time.Time
}

func NewBoardHandler(store *board.Store, validator *middleware.ValidationInterceptor, log zerolog.Logger) *BoardHandler {
	if validator == nil {
		validator = middleware.NewValidationInterceptor(nil)
	}
	return &BoardHandler{
		store:     store,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// HealthHandler handles GET /healthz
func (h *BoardHandler) HealthHandler(c echo.Context) error {
	return ResponseSuccess(c, http.StatusOK, "ok", map[string]string{"status": "SERVING"})
}

// GetBoardHandler handles GET /api/board
func (h *BoardHandler) GetBoardHandler(c echo.Context) error {
	snap := h.store.Snapshot()
	return ResponseSuccess(c, http.StatusOK, "", kanbanv1.GetBoardResponse{
		Columns: service.ConvertColumnsToProto(board.ColumnsOf(snap), h.now()),
		Labels:  snap.Labels,
	})
}

// ExportBoardHandler handles GET /api/board/export.xlsx
func (h *BoardHandler) ExportBoardHandler(c echo.Context) error {
	snap := h.store.Snapshot()
	data, err := export.BoardToXLSX(board.ColumnsOf(snap), snap.Labels, h.now())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to export board")
		return ResponseError(c, http.StatusInternalServerError, "failed to export board", err)
	}

	filename := fmt.Sprintf("kanban_%s.xlsx", h.now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// GetTaskHandler handles GET /api/tasks/:id
func (h *BoardHandler) GetTaskHandler(c echo.Context) error {
	task, ok := h.store.Task(c.Param("id"))
	if !ok {
		return ResponseError(c, http.StatusNotFound, "task not found", nil)
	}
	return ResponseSuccess(c, http.StatusOK, "", service.ConvertTaskToProto(task, h.now()))
}

// CreateTaskHandler handles POST /api/tasks
func (h *BoardHandler) CreateTaskHandler(c echo.Context) error {
	var req kanbanv1.AddTaskRequest
	if err := c.Bind(&req); err != nil {
		return ResponseError(c, http.StatusBadRequest, "invalid request body", err)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationError(c, err)
	}

	input := models.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Labels:      req.Labels,
	}
	if req.Priority != "" {
		p, err := models.ParsePriority(req.Priority)
		if err != nil {
			return ResponseError(c, http.StatusBadRequest, "invalid priority", err)
		}
		input.Priority = p
	}

	task, err := h.store.AddTask(c.Request().Context(), input)
	if err != nil {
		return h.storeError(c, err, "failed to create task")
	}
	return ResponseSuccess(c, http.StatusCreated, "task created", service.ConvertTaskToProto(task, h.now()))
}

// UpdateTaskHandler handles PATCH /api/tasks/:id
func (h *BoardHandler) UpdateTaskHandler(c echo.Context) error {
	var req kanbanv1.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return ResponseError(c, http.StatusBadRequest, "invalid request body", err)
	}
	req.Id = c.Param("id")
	if err := h.validator.Validate(&req); err != nil {
		return validationError(c, err)
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
			return ResponseError(c, http.StatusBadRequest, "invalid status", err)
		}
		patch.Status = &st
	}
	if req.Priority != nil {
		p, err := models.ParsePriority(*req.Priority)
		if err != nil {
			return ResponseError(c, http.StatusBadRequest, "invalid priority", err)
		}
		patch.Priority = &p
	}

	task, updated, err := h.store.UpdateTask(c.Request().Context(), req.Id, patch)
	if err != nil {
		return h.storeError(c, err, "failed to update task")
	}
	resp := kanbanv1.UpdateTaskResponse{Updated: updated}
	if updated {
		resp.Task = service.ConvertTaskToProto(task, h.now())
	}
	return ResponseSuccess(c, http.StatusOK, "", resp)
}

// UpdateTaskStatusHandler handles PUT /api/tasks/:id/status
func (h *BoardHandler) UpdateTaskStatusHandler(c echo.Context) error {
	var req kanbanv1.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return ResponseError(c, http.StatusBadRequest, "invalid request body", err)
	}
	req.Id = c.Param("id")
	if err := h.validator.Validate(&req); err != nil {
		return validationError(c, err)
	}

	st, err := models.ParseStatus(req.Status)
	if err != nil {
		return ResponseError(c, http.StatusBadRequest, "invalid status", err)
	}
	updated, err := h.store.UpdateTaskStatus(c.Request().Context(), req.Id, st)
	if err != nil {
		return h.storeError(c, err, "failed to move task")
	}
	return ResponseSuccess(c, http.StatusOK, "", kanbanv1.UpdateTaskStatusResponse{Updated: updated})
}

// DeleteTaskHandler handles DELETE /api/tasks/:id
func (h *BoardHandler) DeleteTaskHandler(c echo.Context) error {
	deleted := h.store.DeleteTask(c.Request().Context(), c.Param("id"))
	return ResponseSuccess(c, http.StatusOK, "", kanbanv1.DeleteTaskResponse{Deleted: deleted})
}

// ListLabelsHandler handles GET /api/labels
func (h *BoardHandler) ListLabelsHandler(c echo.Context) error {
	return ResponseSuccess(c, http.StatusOK, "", kanbanv1.ListLabelsResponse{Labels: h.store.Labels()})
}

// CreateLabelHandler handles POST /api/labels
func (h *BoardHandler) CreateLabelHandler(c echo.Context) error {
	var req kanbanv1.AddLabelRequest
	if err := c.Bind(&req); err != nil {
		return ResponseError(c, http.StatusBadRequest, "invalid request body", err)
	}
	if err := h.validator.Validate(&req); err != nil {
		return validationError(c, err)
	}

	added, err := h.store.AddLabel(c.Request().Context(), req.Name)
	if err != nil {
		return h.storeError(c, err, "failed to add label")
	}
	code := http.StatusOK
	if added {
		code = http.StatusCreated
	}
	return ResponseSuccess(c, code, "", kanbanv1.AddLabelResponse{Added: added, Labels: h.store.Labels()})
}

// DeleteLabelHandler handles DELETE /api/labels/:name
func (h *BoardHandler) DeleteLabelHandler(c echo.Context) error {
	name := c.Param("name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	deleted := h.store.DeleteLabel(c.Request().Context(), name)
	return ResponseSuccess(c, http.StatusOK, "", kanbanv1.DeleteLabelResponse{Deleted: deleted, Labels: h.store.Labels()})
}

func (h *BoardHandler) storeError(c echo.Context, err error, msg string) error {
	if board.IsValidationError(err) {
		return ResponseError(c, http.StatusBadRequest, "validation failed", err)
	}
	h.log.Error().Err(err).Msg(msg)
	return ResponseError(c, http.StatusInternalServerError, msg, err)
}

// validationError unwraps the gRPC status produced by the shared validator.
func validationError(c echo.Context, err error) error {
	if st, ok := status.FromError(err); ok {
		err = errors.New(st.Message())
	}
	return ResponseError(c, http.StatusBadRequest, "validation failed", err)
}
