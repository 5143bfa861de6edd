package stores

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rdmitr/todo-api/internal/models"
)

type doneStoreImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewDoneStore(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) DoneStore {
	return &doneStoreImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *doneStoreImpl) GetDone(ctx context.Context, taskID int64) (*models.Done, error) {
	done := &models.Done{ID: taskID}

	const selectDoneByIDQuery = `
SELECT id
FROM dones
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectDoneByIDQuery,
		taskID,
	).Scan(&done.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().
				Int64("task_id", taskID).
				Msg("done marker not found")
			return nil, ErrDoneNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to select done marker")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", taskID).
		Msg("selected done marker")
	return done, nil
}

func (s *doneStoreImpl) CreateDone(ctx context.Context, taskID int64) (*models.Done, error) {
	const insertDoneQuery = `
INSERT INTO dones (id)
VALUES ($1)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertDoneQuery,
		taskID,
	)
	if err != nil {
		// Handlers pre-check both conditions, so these arms only
		// fire when concurrent requests race past the checks.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				s.logger.Warn().
					Int64("task_id", taskID).
					Msg("done marker already exists")
				return nil, ErrDoneAlreadyExists
			case pgerrcode.ForeignKeyViolation:
				s.logger.Warn().
					Int64("task_id", taskID).
					Msg("task not found")
				return nil, ErrTaskNotFound
			}
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to insert done marker")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Msg("marked task as done")
	return &models.Done{ID: taskID}, nil
}

func (s *doneStoreImpl) DeleteDone(ctx context.Context, taskID int64) error {
	const deleteDoneQuery = `
DELETE FROM dones
WHERE id = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteDoneQuery,
		taskID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete done marker")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Int64("task_id", taskID).
			Msg("done marker not found")
		return ErrDoneNotFound
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Msg("unmarked task as done")
	return nil
}
