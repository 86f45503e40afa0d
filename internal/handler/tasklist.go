package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/taskbox/internal/model"
	"github.com/BuzzLyutic/taskbox/internal/service"
	"github.com/BuzzLyutic/taskbox/internal/tasklist"
	"github.com/BuzzLyutic/taskbox/pkg/respond"
)

type renderResponse struct {
	State tasklist.RenderState `json:"state"`
	Tasks []model.Task         `json:"tasks"`
}

type TaskListHandler struct {
	service *service.TaskListService
	logger  *zap.Logger
}

func NewTaskListHandler(srv *service.TaskListService, logger *zap.Logger) *TaskListHandler {
	return &TaskListHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskListHandler) Render(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength == 0 {
		respond.Error(w, r, http.StatusBadRequest, "empty request body")
		return
	}

	var props tasklist.Props
	if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
		h.logger.Debug("failed to decode json", zap.Error(err))
		respond.Error(w, r, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return
	}

	out, err := h.service.Render(r.Context(), props)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	rows := make([]model.Task, 0, out.Len())
	rows = slices.AppendSeq(rows, out.Rows())
	respond.JSON(w, r, http.StatusOK, renderResponse{State: out.State, Tasks: rows})
}

func (h *TaskListHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tasklist.ErrInvalidTaskRecord):
		h.logger.Warn("rejected task list", zap.Error(err))
		respond.Error(w, r, http.StatusUnprocessableEntity, "invalid task record")
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}
