package svd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// TaskStore is the process-wide task registry. Implementations must be
// safe for concurrent readers while a write is in progress; after
// submission a task has at most one logical writer (its worker).
type TaskStore interface {
	CreateTask(ctx context.Context, task *Task) error
	FetchTask(ctx context.Context, id uuid.UUID) (*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListTasks(ctx context.Context) ([]Task, error)
}

type TaskNotFoundErr struct {
	ID uuid.UUID `json:"id"`
}

func AsTaskNotFoundErr(err error) (e *TaskNotFoundErr) {
	errors.As(err, &e)
	return
}

func (err *TaskNotFoundErr) Error() string {
	return fmt.Sprintf("task not found: %s", err.ID)
}

func (err *TaskNotFoundErr) GetStatus() int { return http.StatusNotFound }

type TaskExistsErr struct {
	ID uuid.UUID `json:"id"`
}

func AsTaskExistsErr(err error) (e *TaskExistsErr) {
	errors.As(err, &e)
	return
}

func (err *TaskExistsErr) Error() string {
	return fmt.Sprintf("task exists: %s", err.ID)
}

func (err *TaskExistsErr) GetStatus() int { return http.StatusConflict }

type TaskTransitionErr struct {
	ID   uuid.UUID  `json:"id"`
	From TaskStatus `json:"from"`
	To   TaskStatus `json:"to"`
}

func AsTaskTransitionErr(err error) (e *TaskTransitionErr) {
	errors.As(err, &e)
	return
}

func (err *TaskTransitionErr) Error() string {
	return fmt.Sprintf(
		"task %s: invalid status transition: %s -> %s",
		err.ID,
		err.From,
		err.To,
	)
}

func (err *TaskTransitionErr) GetStatus() int { return http.StatusConflict }
