package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the completion state of a task.
type TaskStatus string

// The two task states. Toggle is the only transition between them.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Validation errors for Task
var (
	ErrEmptyTaskID     = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskUserID = fmt.Errorf("%w: task user ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle  = fmt.Errorf("%w: title is required", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: invalid task status", ErrValidation)
)

// Task is a to-do item owned by exactly one user.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a pending task for userID. Title and description are stored
// as submitted; the title must contain something other than whitespace.
// dueDate is converted to UTC.
func NewTask(userID uuid.UUID, title string, description *string, dueDate *time.Time) (*Task, error) {
	now := time.Now().UTC()

	var desc *string
	if description != nil {
		d := *description
		desc = &d
	}

	var due *time.Time
	if dueDate != nil {
		d := dueDate.UTC()
		due = &d
	}

	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: desc,
		Status:      TaskStatusPending,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}

	if !t.Status.Valid() {
		return ErrInvalidStatus
	}

	return nil
}

// Toggle flips the status between pending and completed and bumps UpdatedAt.
func (t *Task) Toggle() {
	if t.Status == TaskStatusCompleted {
		t.Status = TaskStatusPending
	} else {
		t.Status = TaskStatusCompleted
	}
	t.UpdatedAt = time.Now().UTC()
}

// IsOwnedBy reports whether userID owns the task.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	default:
		return false
	}
}
