package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/internal/repository"
	"github.com/limbo/wordaday/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	userID = uuid.New()
)

func TestCreateAttempt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewAttemptsRepoWithConn(mock)
	attempt := entity.Attempt{
		ChallengeID:   uuid.New(),
		UserID:        userID,
		Guess:         "serendipity",
		IsCorrect:     true,
		AttemptNumber: 1,
	}
	aid := uuid.New()
	createdAt := time.Now()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO attempts (challenge_id, user_id, guess, is_correct, attempt_number)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(attempt.ChallengeID, attempt.UserID, attempt.Guess, attempt.IsCorrect, attempt.AttemptNumber).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(aid, createdAt))
		err := repo.Create(ctx, &attempt)
		assert.NoError(t, err)
		assert.Equal(t, aid, attempt.ID)
		assert.Equal(t, createdAt, attempt.CreatedAt)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(attempt.ChallengeID, attempt.UserID, attempt.Guess, attempt.IsCorrect, attempt.AttemptNumber).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "attempts_user_id_fkey"})
		err := repo.Create(ctx, &attempt)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("unknown challenge", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(attempt.ChallengeID, attempt.UserID, attempt.Guess, attempt.IsCorrect, attempt.AttemptNumber).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "attempts_challenge_id_fkey"})
		err := repo.Create(ctx, &attempt)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(attempt.ChallengeID, attempt.UserID, attempt.Guess, attempt.IsCorrect, attempt.AttemptNumber).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &attempt)
		assert.Error(t, err)
	})
}

func TestGetAttemptsByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewAttemptsRepoWithConn(mock)
	challengeID := uuid.New()
	attempts := make([]*entity.Attempt, 0, 3)
	for i := range cap(attempts) {
		attempts = append(attempts, &entity.Attempt{
			ID:            uuid.New(),
			ChallengeID:   challengeID,
			UserID:        userID,
			Guess:         "guess",
			IsCorrect:     i == 2,
			AttemptNumber: i + 1,
			CreatedAt:     time.Now().Add(time.Minute * time.Duration(-i)),
		})
	}
	query := regexp.QuoteMeta(`SELECT id, challenge_id, user_id, guess, is_correct, attempt_number, created_at
		FROM attempts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		limit := 3
		offset := 0
		rows := pgxmock.NewRows([]string{"id", "challenge_id", "user_id", "guess", "is_correct", "attempt_number", "created_at"})
		for _, a := range attempts {
			rows.AddRow(a.ID, a.ChallengeID, a.UserID, a.Guess, a.IsCorrect, a.AttemptNumber, a.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, limit, offset).
			WillReturnRows(rows)
		result, err := repo.GetByUser(ctx, userID, limit, offset)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(result))
		for i := range result {
			assert.Equal(t, *attempts[i], *result[i])
		}
	})
	t.Run("empty history", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 10, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "challenge_id", "user_id", "guess", "is_correct", "attempt_number", "created_at"}))
		result, err := repo.GetByUser(ctx, userID, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, 10, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUser(ctx, userID, 10, 0)
		assert.Error(t, err)
	})
}

func TestGetAttemptsByUserAndChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewAttemptsRepoWithConn(mock)
	challengeID := uuid.New()
	attempts := make([]*entity.Attempt, 0, 2)
	for i := range cap(attempts) {
		attempts = append(attempts, &entity.Attempt{
			ID:            uuid.New(),
			ChallengeID:   challengeID,
			UserID:        userID,
			Guess:         "guess",
			AttemptNumber: i + 1,
			CreatedAt:     time.Now(),
		})
	}
	query := regexp.QuoteMeta(`SELECT id, challenge_id, user_id, guess, is_correct, attempt_number, created_at
		FROM attempts WHERE user_id = $1 AND challenge_id = $2 ORDER BY attempt_number ASC;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "challenge_id", "user_id", "guess", "is_correct", "attempt_number", "created_at"})
		for _, a := range attempts {
			rows.AddRow(a.ID, a.ChallengeID, a.UserID, a.Guess, a.IsCorrect, a.AttemptNumber, a.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID, challengeID).
			WillReturnRows(rows)
		result, err := repo.GetByUserAndChallenge(ctx, userID, challengeID)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result))
		for i := range result {
			assert.Equal(t, *attempts[i], *result[i])
		}
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID, challengeID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndChallenge(ctx, userID, challengeID)
		assert.Error(t, err)
	})
}
