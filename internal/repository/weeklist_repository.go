package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

type weeklistRepositoryImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewWeeklistRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) Weeklists {
	return &weeklistRepositoryImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *weeklistRepositoryImpl) Insert(ctx context.Context, wl *models.Weeklist) error {
	const insertWeeklistQuery = `
INSERT INTO weeklists (id,
                       user_id,
                       name,
                       tasks,
                       end_time,
                       state,
                       created_at,
                       updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertWeeklistQuery,
		wl.ID,
		wl.UserID,
		wl.Name,
		wl.Tasks,
		wl.EndTime,
		wl.State,
		wl.CreatedAt,
		wl.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to insert weeklist")
		return err
	}
	r.logger.Debug().
		Str("weeklist_id", wl.ID).
		Msg("inserted weeklist")
	return nil
}

func (r *weeklistRepositoryImpl) FindByID(ctx context.Context, id, userID string) (*models.Weeklist, error) {
	wl := &models.Weeklist{
		ID:     id,
		UserID: userID,
	}

	const selectWeeklistByIDQuery = `
SELECT name,
       tasks,
       end_time,
       state,
       created_at,
       updated_at
FROM weeklists
WHERE id = $1 AND
      user_id = $2
`
	err := r.pgPool.QueryRow(
		ctx,
		selectWeeklistByIDQuery,
		wl.ID,
		wl.UserID,
	).Scan(
		&wl.Name,
		&wl.Tasks,
		&wl.EndTime,
		&wl.State,
		&wl.CreatedAt,
		&wl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		r.logger.Error().
			Err(err).
			Str("weeklist_id", wl.ID).
			Msg("failed to select weeklist by id")
		return nil, err
	}
	return wl, nil
}

func (r *weeklistRepositoryImpl) FindActiveByUserID(ctx context.Context, userID string) ([]*models.Weeklist, error) {
	const selectActiveWeeklistsQuery = `
SELECT id,
       name,
       tasks,
       end_time,
       state,
       created_at,
       updated_at
FROM weeklists
WHERE user_id = $1 AND
      state = $2
ORDER BY created_at
`
	rows, err := r.pgPool.Query(
		ctx,
		selectActiveWeeklistsQuery,
		userID,
		models.StateActive,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select active weeklists")
		return nil, err
	}
	defer rows.Close()

	var weeklists []*models.Weeklist
	for rows.Next() {
		wl := &models.Weeklist{UserID: userID}
		err = rows.Scan(
			&wl.ID,
			&wl.Name,
			&wl.Tasks,
			&wl.EndTime,
			&wl.State,
			&wl.CreatedAt,
			&wl.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan weeklist")
			return nil, err
		}
		weeklists = append(weeklists, wl)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	return weeklists, nil
}

func (r *weeklistRepositoryImpl) CountActiveByUserID(ctx context.Context, userID string) (int, error) {
	const countActiveWeeklistsQuery = `
SELECT COUNT(*)
FROM weeklists
WHERE user_id = $1 AND
      state = $2
`
	var count int
	err := r.pgPool.QueryRow(
		ctx,
		countActiveWeeklistsQuery,
		userID,
		models.StateActive,
	).Scan(&count)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to count active weeklists")
		return 0, err
	}
	return count, nil
}

// Update replaces the whole aggregate, conditioned on (id, user_id).
// Last write wins; there is no optimistic-concurrency token.
func (r *weeklistRepositoryImpl) Update(ctx context.Context, wl *models.Weeklist) error {
	const updateWeeklistQuery = `
UPDATE weeklists
SET name = $1,
    tasks = $2,
    end_time = $3,
    state = $4,
    updated_at = $5
WHERE id = $6 AND
      user_id = $7
`
	tag, err := r.pgPool.Exec(
		ctx,
		updateWeeklistQuery,
		wl.Name,
		wl.Tasks,
		wl.EndTime,
		wl.State,
		wl.UpdatedAt,
		wl.ID,
		wl.UserID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("weeklist_id", wl.ID).
			Msg("failed to update weeklist")
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.Debug().
		Str("weeklist_id", wl.ID).
		Msg("updated weeklist")
	return nil
}

func (r *weeklistRepositoryImpl) Delete(ctx context.Context, id, userID string) error {
	const deleteWeeklistQuery = `
DELETE FROM weeklists
       WHERE id = $1 AND
             user_id = $2
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteWeeklistQuery,
		id,
		userID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("weeklist_id", id).
			Msg("failed to delete weeklist")
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.Debug().
		Str("weeklist_id", id).
		Msg("deleted weeklist")
	return nil
}
