package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/pkg/cleanup"
	"github.com/limbo/wordaday/pkg/entity"
)

type UserStatsRepository struct {
	conn PgConnection
}

func NewUserStatsRepo(cfg DBConfig) *UserStatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for userStatsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userStatsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UserStatsRepository{
		conn: pool,
	}
}

func NewUserStatsRepoWithConn(conn PgConnection) *UserStatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userStatsRepo: " + err.Error())
	}
	return &UserStatsRepository{
		conn: conn,
	}
}

func (sr *UserStatsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	var stats entity.UserStats
	stats.UserID = uid
	row := sr.conn.QueryRow(ctx, `SELECT id, total_played, total_solved, current_streak, best_streak, last_played_date, last_solved_date, updated_at, version
		FROM user_stats WHERE user_id = $1;`, uid)
	err := row.Scan(
		&stats.ID,
		&stats.TotalPlayed,
		&stats.TotalSolved,
		&stats.CurrentStreak,
		&stats.BestStreak,
		&stats.LastPlayedDate,
		&stats.LastSolvedDate,
		&stats.UpdatedAt,
		&stats.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting stats by uid error: " + err.Error())
	}
	return &stats, nil
}

func (sr *UserStatsRepository) Insert(ctx context.Context, stats *entity.UserStats) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	row := sr.conn.QueryRow(ctx, `INSERT INTO user_stats (user_id, total_played, total_solved, current_streak, best_streak, last_played_date, last_solved_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, updated_at, version;`,
		stats.UserID,
		stats.TotalPlayed,
		stats.TotalSolved,
		stats.CurrentStreak,
		stats.BestStreak,
		stats.LastPlayedDate,
		stats.LastSolvedDate,
	)
	if err := row.Scan(&stats.ID, &stats.UpdatedAt, &stats.Version); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: another submission created the row first
			case "23505":
				return errorvalues.ErrStatsConflict
			}
		}
		return errors.New("inserting stats error: " + err.Error())
	}
	return nil
}

// UpdateWithVersion replaces the whole row in one statement so no partial
// state is ever observable. Zero matched rows means the version moved on.
func (sr *UserStatsRepository) UpdateWithVersion(ctx context.Context, stats *entity.UserStats, priorVersion int) error {
	if stats == nil {
		return errors.New("stats is nil")
	}
	row := sr.conn.QueryRow(ctx, `UPDATE user_stats SET total_played = $1, total_solved = $2, current_streak = $3, best_streak = $4, last_played_date = $5, last_solved_date = $6, updated_at = NOW(), version = version + 1
		WHERE user_id = $7 AND version = $8 RETURNING id, updated_at, version;`,
		stats.TotalPlayed,
		stats.TotalSolved,
		stats.CurrentStreak,
		stats.BestStreak,
		stats.LastPlayedDate,
		stats.LastSolvedDate,
		stats.UserID,
		priorVersion,
	)
	if err := row.Scan(&stats.ID, &stats.UpdatedAt, &stats.Version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrStatsConflict
		}
		return errors.New("updating stats error: " + err.Error())
	}
	return nil
}
