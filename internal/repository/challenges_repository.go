package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/pkg/cleanup"
	"github.com/limbo/wordaday/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO challenges (challenge_date, language, word, definition, example, hint, difficulty, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		challenge.ChallengeDate,
		challenge.Language,
		challenge.Word,
		challenge.Definition,
		challenge.Example,
		challenge.Hint,
		challenge.Difficulty,
		challenge.IsActive,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrChallengeExists
			}
		}
		return uuid.UUID{}, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challenge entity.Challenge
	challenge.ID = id
	row := cr.conn.QueryRow(ctx, `SELECT challenge_date, language, word, definition, example, hint, difficulty, is_active, created_at, updated_at
		FROM challenges WHERE id = $1;`, id)
	err := row.Scan(
		&challenge.ChallengeDate,
		&challenge.Language,
		&challenge.Word,
		&challenge.Definition,
		&challenge.Example,
		&challenge.Hint,
		&challenge.Difficulty,
		&challenge.IsActive,
		&challenge.CreatedAt,
		&challenge.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &challenge, nil
}

func (cr *ChallengesRepository) GetActiveByDate(ctx context.Context, date time.Time, language string) (*entity.Challenge, error) {
	var challenge entity.Challenge
	row := cr.conn.QueryRow(ctx, `SELECT id, challenge_date, language, word, definition, example, hint, difficulty, is_active, created_at, updated_at
		FROM challenges WHERE challenge_date = $1 AND language = $2 AND is_active = true LIMIT 1;`, date, language)
	err := row.Scan(
		&challenge.ID,
		&challenge.ChallengeDate,
		&challenge.Language,
		&challenge.Word,
		&challenge.Definition,
		&challenge.Example,
		&challenge.Hint,
		&challenge.Difficulty,
		&challenge.IsActive,
		&challenge.CreatedAt,
		&challenge.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting active challenge error: " + err.Error())
	}
	return &challenge, nil
}

func (cr *ChallengesRepository) GetByLanguage(ctx context.Context, language string, limit, offset int) ([]*entity.Challenge, error) {
	challenges := make([]*entity.Challenge, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, challenge_date, language, word, definition, example, hint, difficulty, is_active, created_at, updated_at
		FROM challenges WHERE language = $1 ORDER BY challenge_date DESC LIMIT $2 OFFSET $3;`, language, limit, offset)
	if err != nil {
		return nil, errors.New("getting challenges by language error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		c := entity.Challenge{}
		err = rows.Scan(&c.ID, &c.ChallengeDate, &c.Language, &c.Word, &c.Definition, &c.Example, &c.Hint, &c.Difficulty, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, &c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return challenges, nil
}

func (cr *ChallengesRepository) Update(ctx context.Context, challenge *entity.Challenge) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE challenges SET word = $1, definition = $2, example = $3, hint = $4, difficulty = $5, is_active = $6, updated_at = NOW() WHERE id = $7;`,
		challenge.Word,
		challenge.Definition,
		challenge.Example,
		challenge.Hint,
		challenge.Difficulty,
		challenge.IsActive,
		challenge.ID,
	)
	if err != nil {
		return errors.New("error updating challenge: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}
