package stores

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rdmitr/todo-api/internal/models"
)

type taskStoreImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskStore(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskStore {
	return &taskStoreImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskStoreImpl) CreateTask(ctx context.Context, params TaskParams) (*models.Task, error) {
	task := &models.Task{
		Title:   params.Title,
		DueDate: params.DueDate,
	}

	const insertTaskQuery = `
INSERT INTO tasks (title, due_date)
VALUES ($1, $2)
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		task.Title,
		task.DueDate,
	).Scan(&task.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskStoreImpl) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{ID: id}

	const selectTaskByIDQuery = `
SELECT title,
       due_date
FROM tasks
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectTaskByIDQuery,
		task.ID,
	).Scan(
		&task.Title,
		&task.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Int64("task_id", task.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to select task by id")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("selected task by id")
	return task, nil
}

func (s *taskStoreImpl) UpdateTask(ctx context.Context, id int64, params TaskParams) (*models.Task, error) {
	task := &models.Task{
		ID:      id,
		Title:   params.Title,
		DueDate: params.DueDate,
	}

	const updateTaskQuery = `
UPDATE tasks
SET title    = $1,
    due_date = $2
WHERE id = $3
`
	tag, err := s.pgPool.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.DueDate,
		task.ID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Int64("task_id", task.ID).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("updated task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	return task, nil
}

func (s *taskStoreImpl) DeleteTask(ctx context.Context, id int64) error {
	// The dones row, if any, goes away with the task
	// through the ON DELETE CASCADE constraint.
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Int64("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskStoreImpl) ListTasksWithDone(ctx context.Context) ([]*models.TaskWithDone, error) {
	const selectTasksWithDoneQuery = `
SELECT t.id,
       t.title,
       t.due_date,
       d.id IS NOT NULL AS done
FROM tasks t
         LEFT JOIN dones d ON d.id = t.id
ORDER BY t.id
`
	rows, err := s.pgPool.Query(ctx, selectTasksWithDoneQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks with done flag")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.TaskWithDone, 0)
	for rows.Next() {
		task := new(models.TaskWithDone)
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.DueDate,
			&task.Done,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks with done flag")
	return tasks, nil
}
