package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrChallengeNotFound = errors.New("challenge doesn't exist")
	ErrInvalidAttempt    = errors.New("attempt validation failed")
	ErrInvalidChallenge  = errors.New("challenge validation failed")
	ErrChallengeExists   = errors.New("challenge for this date and language already exists")
	ErrChallengeInactive = errors.New("challenge isn't active")

	ErrStatsNotFound = errors.New("stats for user don't exist yet")
	// Returned on a missed optimistic write: another submission updated the
	// stats row between our read and write. The stats service retries on it.
	ErrStatsConflict = errors.New("stats row version conflict")
)
