package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/pkg/cleanup"
	"github.com/limbo/wordaday/pkg/entity"
)

type AttemptsRepository struct {
	conn PgConnection
}

func NewAttemptsRepo(cfg DBConfig) *AttemptsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for attemptsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attemptsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AttemptsRepository{
		conn: pool,
	}
}

func NewAttemptsRepoWithConn(conn PgConnection) *AttemptsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for attemptsRepo: " + err.Error())
	}
	return &AttemptsRepository{
		conn: conn,
	}
}

func (ar *AttemptsRepository) Create(ctx context.Context, attempt *entity.Attempt) error {
	if attempt == nil {
		return errors.New("attempt is nil")
	}
	row := ar.conn.QueryRow(ctx, `INSERT INTO attempts (challenge_id, user_id, guess, is_correct, attempt_number)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		attempt.ChallengeID,
		attempt.UserID,
		attempt.Guess,
		attempt.IsCorrect,
		attempt.AttemptNumber,
	)
	if err := row.Scan(&attempt.ID, &attempt.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				if pgErr.ConstraintName == "attempts_user_id_fkey" {
					return errorvalues.ErrUserNotFound
				}
				return errorvalues.ErrChallengeNotFound
			}
		}
		return errors.New("creating attempt error: " + err.Error())
	}
	return nil
}

func (ar *AttemptsRepository) GetByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Attempt, error) {
	attempts := make([]*entity.Attempt, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, challenge_id, user_id, guess, is_correct, attempt_number, created_at
		FROM attempts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting attempts by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Attempt{}
		err = rows.Scan(&a.ID, &a.ChallengeID, &a.UserID, &a.Guess, &a.IsCorrect, &a.AttemptNumber, &a.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling attempt error: " + err.Error())
		}
		attempts = append(attempts, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return attempts, nil
}

func (ar *AttemptsRepository) GetByUserAndChallenge(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.Attempt, error) {
	attempts := make([]*entity.Attempt, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, challenge_id, user_id, guess, is_correct, attempt_number, created_at
		FROM attempts WHERE user_id = $1 AND challenge_id = $2 ORDER BY attempt_number ASC;`, uid, challengeID)
	if err != nil {
		return nil, errors.New("getting attempts by challenge error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Attempt{}
		err = rows.Scan(&a.ID, &a.ChallengeID, &a.UserID, &a.Guess, &a.IsCorrect, &a.AttemptNumber, &a.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling attempt error: " + err.Error())
		}
		attempts = append(attempts, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return attempts, nil
}
