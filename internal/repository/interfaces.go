package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/wordaday/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Creates new challenge. Returns id assigned by database
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Returns first active challenge for the (date, language) pair
	GetActiveByDate(ctx context.Context, date time.Time, language string) (*entity.Challenge, error)
	// Lists challenges of a language, newest first. Requires pagination params
	GetByLanguage(ctx context.Context, language string, limit, offset int) ([]*entity.Challenge, error)
	// Updates challenge content fields by ID (ID in challenge is necessary)
	Update(ctx context.Context, challenge *entity.Challenge) error
}

type AttemptsRepositoryI interface {
	// Inserts one immutable attempt row. Fills ID and CreatedAt assigned by database
	Create(ctx context.Context, attempt *entity.Attempt) error
	// Lists user's attempts, newest first. Requires pagination params
	GetByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Attempt, error)
	// Lists user's attempts against one challenge, ordered by attempt number
	GetByUserAndChallenge(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.Attempt, error)
}

type UserStatsRepositoryI interface {
	// Returns user's stats row or ErrStatsNotFound
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Inserts first stats row for a user. Fills ID, UpdatedAt and Version.
	// A concurrent first insert surfaces as ErrStatsConflict
	Insert(ctx context.Context, stats *entity.UserStats) error
	// Replaces the stats row if its version still equals priorVersion,
	// otherwise ErrStatsConflict. Fills UpdatedAt and the new Version
	UpdateWithVersion(ctx context.Context, stats *entity.UserStats, priorVersion int) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
