package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/internal/repository"
	"github.com/limbo/wordaday/pkg/entity"
)

type AttemptsService struct {
	challengesRepo repository.ChallengesRepositoryI
	attemptsRepo   repository.AttemptsRepositoryI
	statsService   StatsServiceI
}

func NewAttemptsService(challengesRepo repository.ChallengesRepositoryI, attemptsRepo repository.AttemptsRepositoryI, statsService StatsServiceI) *AttemptsService {
	if challengesRepo == nil || attemptsRepo == nil || statsService == nil {
		log.Fatal("on attempts service provided nil dependencies")
	}
	return &AttemptsService{
		challengesRepo: challengesRepo,
		attemptsRepo:   attemptsRepo,
		statsService:   statsService,
	}
}

// RecordAttempt validates the submission, inserts one immutable attempt row
// and synchronously folds the outcome into the user's stats. The two writes
// are one logical unit: a stats failure after the insert is propagated, never
// swallowed.
func (as *AttemptsService) RecordAttempt(ctx context.Context, uid uuid.UUID, req *RecordAttemptRequest) (*entity.Attempt, *entity.UserStats, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidAttempt
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, nil, err
		}
		return nil, nil, errors.New("validation unexpected error: " + err.Error())
	}
	challenge, err := as.challengesRepo.GetByID(ctx, req.ChallengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("challenges repository error: " + err.Error())
	}
	if !challenge.IsActive {
		return nil, nil, errorvalues.ErrChallengeInactive
	}
	attemptNumber := req.AttemptNumber
	if attemptNumber == 0 {
		attemptNumber = 1
	}
	attempt := entity.Attempt{
		ChallengeID:   challenge.ID,
		UserID:        uid,
		Guess:         req.Guess,
		IsCorrect:     req.IsCorrect,
		AttemptNumber: attemptNumber,
	}
	err = as.attemptsRepo.Create(ctx, &attempt)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			return nil, nil, err
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, nil, err
		}
		return nil, nil, errors.New("attempts repository error: " + err.Error())
	}
	stats, err := as.statsService.ApplyOutcome(ctx, uid, challenge.ChallengeDate, req.IsCorrect)
	if err != nil {
		// Attempt row is already persisted; the caller has to see that its
		// stats were not, instead of a silent undercount
		return nil, nil, errors.New("stats aggregation error after attempt insert: " + err.Error())
	}
	return &attempt, stats, nil
}

func (as *AttemptsService) ListAttempts(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Attempt, error) {
	attempts, err := as.attemptsRepo.GetByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("attempts repository error: " + err.Error())
	}
	return attempts, nil
}

func (as *AttemptsService) ListChallengeAttempts(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.Attempt, error) {
	attempts, err := as.attemptsRepo.GetByUserAndChallenge(ctx, uid, challengeID)
	if err != nil {
		return nil, errors.New("attempts repository error: " + err.Error())
	}
	return attempts, nil
}
