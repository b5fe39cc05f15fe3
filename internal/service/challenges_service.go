package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/internal/repository"
	"github.com/limbo/wordaday/pkg/entity"
)

type ChallengesService struct {
	repo repository.ChallengesRepositoryI
}

func NewChallengesService(challengesRepo repository.ChallengesRepositoryI) *ChallengesService {
	if challengesRepo == nil {
		log.Fatal("provided nil challengesRepo")
	}
	return &ChallengesService{
		repo: challengesRepo,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, req *CreateChallengeRequest) (*entity.Challenge, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidChallenge
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = entity.DifficultyMedium
	}
	c := entity.Challenge{
		ChallengeDate: req.ChallengeDate,
		Language:      req.Language,
		Word:          req.Word,
		Definition:    req.Definition,
		Example:       req.Example,
		Hint:          req.Hint,
		Difficulty:    difficulty,
		IsActive:      true,
	}
	id, err := cs.repo.Create(ctx, &c)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeExists) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	challenge, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

// UpdateChallenge merges the provided fields over the stored record. When
// nothing actually changes the stored record comes back untouched.
func (cs *ChallengesService) UpdateChallenge(ctx context.Context, id uuid.UUID, req *UpdateChallengeRequest) (*entity.Challenge, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidChallenge
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	challenge, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	changed := false
	if req.Word != nil && *req.Word != challenge.Word {
		challenge.Word = *req.Word
		changed = true
	}
	if req.Definition != nil && *req.Definition != challenge.Definition {
		challenge.Definition = *req.Definition
		changed = true
	}
	if req.Example != nil && *req.Example != challenge.Example {
		challenge.Example = *req.Example
		changed = true
	}
	if req.Hint != nil && *req.Hint != challenge.Hint {
		challenge.Hint = *req.Hint
		changed = true
	}
	if req.Difficulty != nil && *req.Difficulty != challenge.Difficulty {
		challenge.Difficulty = *req.Difficulty
		changed = true
	}
	if req.IsActive != nil && *req.IsActive != challenge.IsActive {
		challenge.IsActive = *req.IsActive
		changed = true
	}
	if !changed {
		return challenge, nil
	}
	err = cs.repo.Update(ctx, challenge)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	challenge, err = cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	challenge, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

func (cs *ChallengesService) GetActiveChallengeForDate(ctx context.Context, date time.Time, language string) (*entity.Challenge, error) {
	challenge, err := cs.repo.GetActiveByDate(ctx, date, language)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenge, nil
}

func (cs *ChallengesService) ListChallenges(ctx context.Context, language string, pagination PaginationOpts) ([]*entity.Challenge, error) {
	challenges, err := cs.repo.GetByLanguage(ctx, language, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}
