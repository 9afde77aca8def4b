package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-weeklist/internal/models"
)

type userRepositoryImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewUserRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) Users {
	return &userRepositoryImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *userRepositoryImpl) Insert(ctx context.Context, user *models.User) error {
	const insertUserQuery = `
INSERT INTO users (id,
                   fullname,
                   email,
                   password,
                   age,
                   gender,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertUserQuery,
		user.ID,
		user.Fullname,
		user.Email,
		user.Password,
		user.Age,
		user.Gender,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}

		r.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return err
	}
	r.logger.Debug().
		Str("user_id", user.ID).
		Msg("inserted user")
	return nil
}

func (r *userRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{
		Email: email,
	}

	const selectUserByEmailQuery = `
SELECT id,
       fullname,
       password,
       age,
       gender,
       created_at,
       updated_at
FROM users
WHERE email = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectUserByEmailQuery,
		user.Email,
	).Scan(
		&user.ID,
		&user.Fullname,
		&user.Password,
		&user.Age,
		&user.Gender,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		r.logger.Error().
			Err(err).
			Str("email", user.Email).
			Msg("failed to select user by email")
		return nil, err
	}
	return user, nil
}
