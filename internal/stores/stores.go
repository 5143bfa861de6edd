package stores

import (
	"context"
	"errors"
	"time"

	"github.com/rdmitr/todo-api/internal/models"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrDoneNotFound      = errors.New("done marker not found")
	ErrDoneAlreadyExists = errors.New("done marker already exists")
)

type TaskStore interface {
	// CreateTask inserts a new task and returns
	// it with the generated ID populated.
	CreateTask(ctx context.Context, params TaskParams) (*models.Task, error)

	// GetTask returns the task with the given ID
	// or ErrTaskNotFound if no such row exists.
	GetTask(ctx context.Context, id int64) (*models.Task, error)

	// UpdateTask overwrites both title and due date of the task with
	// the given ID. There are no partial updates: an absent field
	// becomes NULL. It returns ErrTaskNotFound if no such row exists.
	UpdateTask(ctx context.Context, id int64, params TaskParams) (*models.Task, error)

	// DeleteTask removes the task with the given ID, or returns
	// ErrTaskNotFound. Deleting a task also removes its done
	// marker through the foreign key cascade.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasksWithDone returns every task left-joined against the
	// done markers, ordered by ascending task ID. Done is true iff
	// a marker row exists for the task.
	ListTasksWithDone(ctx context.Context) ([]*models.TaskWithDone, error)
}

type DoneStore interface {
	// GetDone returns the done marker for the given task ID
	// or ErrDoneNotFound if the task is not marked.
	GetDone(ctx context.Context, taskID int64) (*models.Done, error)

	// CreateDone marks the task with the given ID as completed.
	//
	// It returns ErrDoneAlreadyExists if a marker is already present
	// and ErrTaskNotFound if no task with that ID exists.
	CreateDone(ctx context.Context, taskID int64) (*models.Done, error)

	// DeleteDone removes the done marker for the given task ID
	// or returns ErrDoneNotFound.
	DeleteDone(ctx context.Context, taskID int64) error
}

type TaskParams struct {
	Title   *string
	DueDate *time.Time
}
