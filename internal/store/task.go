package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every read and write is scoped to the owning user: a task that exists but
// belongs to someone else is reported as ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task after domain validation.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByUser returns all tasks owned by userID, oldest first.
	// Returns an empty (non-nil) slice when the user has no tasks.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// GetForUpdate retrieves one of userID's tasks and locks the row until the
	// surrounding transaction ends. Outside a transaction it behaves like a plain read.
	GetForUpdate(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateStatus persists task.Status and task.UpdatedAt.
	// Returns ErrTaskNotFound if the task is not owned by task.UserID.
	UpdateStatus(ctx context.Context, task *domain.Task) error

	// Delete permanently removes one of userID's tasks.
	// Returns ErrTaskNotFound if no such task is owned by userID.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
