package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// CreateTaskParams carries the user-supplied fields of a new task.
type CreateTaskParams struct {
	Title       string
	Description *string
	DueDate     *time.Time
}

// TaskService manages the tasks of an authenticated user. Every operation is
// scoped to userID; other users' tasks behave as if they did not exist.
type TaskService interface {
	// List returns the user's tasks oldest first. Never nil.
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Create adds a pending task owned by userID.
	Create(ctx context.Context, userID uuid.UUID, params CreateTaskParams) (*domain.Task, error)

	// Toggle flips the task between pending and completed.
	// Returns store.ErrTaskNotFound when userID does not own taskID.
	Toggle(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// Delete permanently removes the task.
	// Returns store.ErrTaskNotFound when userID does not own taskID.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	tx        store.Transactor
	logger    *slog.Logger
}

// Ensure taskServiceImpl implements TaskService interface
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService
func NewTaskService(taskStore store.TaskStore, tx store.Transactor, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, errors.New("taskStore cannot be nil")
	}
	if tx == nil {
		return nil, errors.New("transactor cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		tx:        tx,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// List implements TaskService.List
func (s *taskServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to list tasks", "error", err, "user_id", userID)
		return nil, NewServiceError("task", "list", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Create implements TaskService.Create
func (s *taskServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	params CreateTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(userID, params.Title, params.Description, params.DueDate)
	if err != nil {
		log.Debug("task input rejected", "error", err, "user_id", userID)
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Create(ctx, task)
	})
	if err != nil {
		log.Error("failed to create task", "error", err, "user_id", userID)
		return nil, NewServiceError("task", "create", err)
	}

	log.Info("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// Toggle implements TaskService.Toggle
// The row is locked for the duration of the transaction so concurrent
// toggles of the same task serialize.
func (s *taskServiceImpl) Toggle(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var toggled *domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetForUpdate(ctx, userID, taskID)
		if err != nil {
			return err
		}
		if !task.IsOwnedBy(userID) {
			return store.ErrTaskNotFound
		}

		task.Toggle()
		if err := txStore.UpdateStatus(ctx, task); err != nil {
			return err
		}

		toggled = task
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("toggle of task not owned by user", "task_id", taskID, "user_id", userID)
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to toggle task", "error", err, "task_id", taskID)
		return nil, NewServiceError("task", "toggle", err)
	}

	log.Info("task toggled",
		"task_id", toggled.ID,
		"status", toggled.Status)
	return toggled, nil
}

// Delete implements TaskService.Delete
func (s *taskServiceImpl) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tx.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.taskStore.WithTx(tx).Delete(ctx, userID, taskID)
	})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("delete of task not owned by user", "task_id", taskID, "user_id", userID)
			return store.ErrTaskNotFound
		}
		log.Error("failed to delete task", "error", err, "task_id", taskID)
		return NewServiceError("task", "delete", err)
	}

	log.Info("task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
