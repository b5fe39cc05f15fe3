package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/internal/repository"
	"github.com/limbo/wordaday/pkg/entity"
)

// Bound on optimistic retries. Every lost write means another submission for
// the same user committed, so the loop always makes global progress.
const statsApplyRetries = 16

type StatsService struct {
	repo repository.UserStatsRepositoryI
}

func NewStatsService(statsRepo repository.UserStatsRepositoryI) *StatsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	return &StatsService{
		repo: statsRepo,
	}
}

// ApplyOutcome folds one attempt outcome into the user's single stats row.
// Read-modify-write under optimistic concurrency: on a version conflict the
// whole cycle reruns against the fresh row. Applying the same outcome twice
// double-counts; the attempts service calls this exactly once per insert.
func (ss *StatsService) ApplyOutcome(ctx context.Context, uid uuid.UUID, playedDate time.Time, isCorrect bool) (*entity.UserStats, error) {
	for range statsApplyRetries {
		prior, err := ss.repo.GetByUserID(ctx, uid)
		if err != nil && !errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, errors.New("stats repository error: " + err.Error())
		}
		next := nextStats(prior, uid, playedDate, isCorrect)
		if prior == nil {
			err = ss.repo.Insert(ctx, next)
		} else {
			err = ss.repo.UpdateWithVersion(ctx, next, prior.Version)
		}
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, errorvalues.ErrStatsConflict) {
			return nil, errors.New("stats repository error: " + err.Error())
		}
	}
	return nil, errorvalues.ErrStatsConflict
}

func (ss *StatsService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	stats, err := ss.repo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

// nextStats computes the merge transition for one outcome. Streak growth is
// date-insensitive: any correct outcome extends it regardless of the calendar
// gap since the last play.
func nextStats(prior *entity.UserStats, uid uuid.UUID, playedDate time.Time, isCorrect bool) *entity.UserStats {
	next := entity.UserStats{
		UserID:         uid,
		LastPlayedDate: playedDate,
	}
	if prior != nil {
		next.ID = prior.ID
		next.TotalPlayed = prior.TotalPlayed
		next.TotalSolved = prior.TotalSolved
		next.CurrentStreak = prior.CurrentStreak
		next.BestStreak = prior.BestStreak
		next.LastSolvedDate = prior.LastSolvedDate
	}
	next.TotalPlayed++
	if isCorrect {
		next.TotalSolved++
		next.CurrentStreak++
		if next.CurrentStreak > next.BestStreak {
			next.BestStreak = next.CurrentStreak
		}
		solvedDate := playedDate
		next.LastSolvedDate = &solvedDate
	} else {
		next.CurrentStreak = 0
	}
	return &next
}
