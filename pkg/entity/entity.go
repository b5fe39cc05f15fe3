package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Challenge is the single word puzzle active for a (challenge_date, language) pair.
// Word, Definition, Example and Hint are disclosure fields, exposed by the API
// layer only after a solve or through content management.
type Challenge struct {
	ID            uuid.UUID  `json:"id"`
	ChallengeDate time.Time  `json:"challenge_date"`
	Language      string     `json:"language"`
	Word          string     `json:"word"`
	Definition    string     `json:"definition,omitempty"`
	Example       string     `json:"example,omitempty"`
	Hint          string     `json:"hint,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Attempt is one guess submission. Rows are immutable once inserted.
// AttemptNumber and IsCorrect are caller-supplied and stored as given.
type Attempt struct {
	ID            uuid.UUID `json:"id"`
	ChallengeID   uuid.UUID `json:"challenge_id"`
	UserID        uuid.UUID `json:"uid"`
	Guess         string    `json:"guess"`
	IsCorrect     bool      `json:"is_correct"`
	AttemptNumber int       `json:"attempt_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserStats is the per-user rolling aggregate. At most one row per user.
// Version guards the read-modify-write cycle in the stats service.
type UserStats struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"uid"`
	TotalPlayed    int        `json:"total_played"`
	TotalSolved    int        `json:"total_solved"`
	CurrentStreak  int        `json:"current_streak"`
	BestStreak     int        `json:"best_streak"`
	LastPlayedDate time.Time  `json:"last_played_date"`
	LastSolvedDate *time.Time `json:"last_solved_date,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
	Version        int        `json:"-"`
}
