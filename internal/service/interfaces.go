package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/wordaday/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type RecordAttemptRequest struct {
	ChallengeID uuid.UUID `validate:"required"`
	Guess       string    `validate:"required,max=100"`
	// Caller-authoritative verdict and ordinal: stored as given, never derived
	IsCorrect     bool
	AttemptNumber int `validate:"omitempty,min=1"`
}

type CreateChallengeRequest struct {
	ChallengeDate time.Time         `validate:"required"`
	Language      string            `validate:"required,langcode"`
	Word          string            `validate:"required,min=1,max=64"`
	Definition    string            `validate:"max=1000"`
	Example       string            `validate:"max=1000"`
	Hint          string            `validate:"max=300"`
	Difficulty    entity.Difficulty `validate:"omitempty,oneof=easy medium hard"`
}

type UpdateChallengeRequest struct {
	Word       *string            `validate:"omitempty,min=1,max=64"`
	Definition *string            `validate:"omitempty,max=1000"`
	Example    *string            `validate:"omitempty,max=1000"`
	Hint       *string            `validate:"omitempty,max=300"`
	Difficulty *entity.Difficulty `validate:"omitempty,oneof=easy medium hard"`
	IsActive   *bool
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ChallengesServiceI interface {
	// Content management. Creates challenge, active by default
	CreateChallenge(ctx context.Context, req *CreateChallengeRequest) (*entity.Challenge, error)
	// Partial update. A request with no changed fields returns the record unchanged
	UpdateChallenge(ctx context.Context, id uuid.UUID, req *UpdateChallengeRequest) (*entity.Challenge, error)
	GetChallenge(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// First active challenge for the (date, language) pair
	GetActiveChallengeForDate(ctx context.Context, date time.Time, language string) (*entity.Challenge, error)
	ListChallenges(ctx context.Context, language string, pagination PaginationOpts) ([]*entity.Challenge, error)
}

type AttemptsServiceI interface {
	// Persists one attempt against an active challenge and folds its outcome
	// into the user's stats. Returns both for the response
	RecordAttempt(ctx context.Context, uid uuid.UUID, req *RecordAttemptRequest) (*entity.Attempt, *entity.UserStats, error)
	ListAttempts(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Attempt, error)
	ListChallengeAttempts(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.Attempt, error)
}

type StatsServiceI interface {
	// Applies one outcome to the user's stats row. Not idempotent: the caller
	// must invoke it exactly once per genuine attempt
	ApplyOutcome(ctx context.Context, uid uuid.UUID, playedDate time.Time, isCorrect bool) (*entity.UserStats, error)
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
}
