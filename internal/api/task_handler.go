package api

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskHandler serves the authenticated /api/tasks routes. It must be mounted
// behind the auth middleware.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /api/tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	params := service.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		due, err := domain.ParseDueDate(*req.DueDate)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		params.DueDate = due
	}

	task, err := h.taskService.Create(r.Context(), user.ID, params)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// Toggle handles PATCH /api/tasks/{id}/toggle.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := h.requireUserAndTaskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.Toggle(r.Context(), user.ID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, taskID, ok := h.requireUserAndTaskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), user.ID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: MsgTaskDeleted})
}

func (h *TaskHandler) requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := getUserFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return nil, false
	}
	return user, true
}

// requireUserAndTaskID resolves the caller and the {id} path parameter.
// An id that is not a UUID cannot name any task, so it is reported as 404.
func (h *TaskHandler) requireUserAndTaskID(w http.ResponseWriter, r *http.Request) (*domain.User, uuid.UUID, bool) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return nil, uuid.Nil, false
	}

	taskID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, errors.Join(store.ErrTaskNotFound, err), "")
		return nil, uuid.Nil, false
	}

	return user, taskID, true
}
