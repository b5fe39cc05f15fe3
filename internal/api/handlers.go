package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/internal/service"
	"github.com/limbo/wordaday/pkg/entity"
	"github.com/limbo/wordaday/pkg/httputil"
)

const dateLayout = "2006-01-02"

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type SubmitAttemptRequest struct {
	ChallengeID   string `json:"challenge_id"`
	Guess         string `json:"guess"`
	IsCorrect     *bool  `json:"is_correct,omitempty"`
	AttemptNumber *int   `json:"attempt_number,omitempty"`
}

type CreateChallengeRequest struct {
	ChallengeDate string `json:"challenge_date"`
	Language      string `json:"language"`
	Word          string `json:"word"`
	Definition    string `json:"definition,omitempty"`
	Example       string `json:"example,omitempty"`
	Hint          string `json:"hint,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
}

type UpdateChallengeRequest struct {
	Word       *string `json:"word,omitempty"`
	Definition *string `json:"definition,omitempty"`
	Example    *string `json:"example,omitempty"`
	Hint       *string `json:"hint,omitempty"`
	Difficulty *string `json:"difficulty,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// TodayChallengeResponse hides the answer and the disclosure fields:
// they are revealed only through SubmitAttemptResponse after a solve.
type TodayChallengeResponse struct {
	ID            string `json:"id"`
	ChallengeDate string `json:"challenge_date"`
	Language      string `json:"language"`
	Difficulty    string `json:"difficulty"`
}

type SolutionView struct {
	Word       string `json:"word"`
	Definition string `json:"definition,omitempty"`
	Example    string `json:"example,omitempty"`
	Hint       string `json:"hint,omitempty"`
}

type SubmitAttemptResponse struct {
	Attempt  *entity.Attempt   `json:"attempt"`
	Stats    *entity.UserStats `json:"stats"`
	Solution *SolutionView     `json:"solution,omitempty"`
}

type GetAttemptsResponse struct {
	UserID   string            `json:"uid"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Attempts []*entity.Attempt `json:"attempts"`
}

type GetChallengesResponse struct {
	Language   string              `json:"language"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Challenges []*entity.Challenge `json:"challenges"`
}

// Register godoc
// @Summary Register new user
// @Tags auth
// @Accept json
// @Param request body api.RegisterRequest true "credentials"
// @Success 201 {object} map[string]any
// @Failure 400,409,500 {object} httputil.ErrorResponse
// @Router /auth/register [post]
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

// Login godoc
// @Summary Login, get JWT
// @Tags auth
// @Accept json
// @Param request body api.LoginRequest true "credentials"
// @Success 200 {object} map[string]any
// @Failure 400,403,404,500 {object} httputil.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

// SubmitAttempt godoc
// @Summary Submit a guess against a challenge
// @Tags attempts
// @Accept json
// @Param request body api.SubmitAttemptRequest true "attempt"
// @Success 201 {object} api.SubmitAttemptResponse
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /attempts [post]
func (s *Server) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit attempt error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitAttemptRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("submit attempt error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	challengeID, err := uuid.Parse(req.ChallengeID)
	if err != nil {
		logger.Error("submit attempt error: invalid challenge id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id", nil)
		return
	}
	// Caller-supplied verdict and ordinal with defaults: false and 1
	isCorrect := false
	if req.IsCorrect != nil {
		isCorrect = *req.IsCorrect
	}
	attemptNumber := 1
	if req.AttemptNumber != nil {
		attemptNumber = *req.AttemptNumber
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	attempt, stats, err := s.attemptsService.RecordAttempt(ctx, uid, &service.RecordAttemptRequest{
		ChallengeID:   challengeID,
		Guess:         req.Guess,
		IsCorrect:     isCorrect,
		AttemptNumber: attemptNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound), errors.Is(err, errorvalues.ErrChallengeInactive):
			logger.Error("submit attempt error: challenge not found or inactive")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInvalidAttempt):
			logger.Error("submit attempt error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "attempt validation failed", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("submit attempt error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("submit attempt error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording attempt", nil)
		}
		return
	}
	resp := SubmitAttemptResponse{
		Attempt: attempt,
		Stats:   stats,
	}
	if attempt.IsCorrect {
		challenge, err := s.challengesService.GetChallenge(ctx, challengeID)
		if err != nil {
			logger.Error("submit attempt: solution lookup failed", slog.String("error", err.Error()))
		} else {
			resp.Solution = &SolutionView{
				Word:       challenge.Word,
				Definition: challenge.Definition,
				Example:    challenge.Example,
				Hint:       challenge.Hint,
			}
		}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
	logger.Info("attempt recorded")
}

// GetAttempts godoc
// @Summary List own attempts
// @Tags attempts
// @Param challenge_id query string false "filter by challenge"
// @Success 200 {object} api.GetAttemptsResponse
// @Failure 400,401,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /attempts [get]
func (s *Server) GetAttempts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get attempts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if challengeIDStr := r.URL.Query().Get("challenge_id"); challengeIDStr != "" {
		challengeID, err := uuid.Parse(challengeIDStr)
		if err != nil {
			logger.Error("get attempts error: invalid challenge id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id", nil)
			return
		}
		attempts, err := s.attemptsService.ListChallengeAttempts(ctx, uid, challengeID)
		if err != nil {
			logger.Error("getting attempts list error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting attempts list", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, GetAttemptsResponse{
			UserID:   uid.String(),
			Page:     1,
			Limit:    len(attempts),
			Attempts: attempts,
		})
		logger.Info("attempts provided")
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	attempts, err := s.attemptsService.ListAttempts(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting attempts list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting attempts list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetAttemptsResponse{
		UserID:   uid.String(),
		Page:     page,
		Limit:    limit,
		Attempts: attempts,
	})
	logger.Info("attempts provided")
}

// GetStats godoc
// @Summary Own aggregated stats
// @Tags stats
// @Success 200 {object} entity.UserStats
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /stats [get]
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			logger.Error("get stats error: no stats yet")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no stats for user yet", nil)
			return
		}
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

// GetTodayChallenge godoc
// @Summary Active challenge for a date and language
// @Tags challenges
// @Param lang query string false "language code, default en"
// @Param date query string false "YYYY-MM-DD, default today UTC"
// @Success 200 {object} api.TodayChallengeResponse
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /challenges/today [get]
func (s *Server) GetTodayChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	language := r.URL.Query().Get("lang")
	if language == "" {
		language = "en"
	}
	date := time.Now().UTC().Truncate(time.Hour * 24)
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		var err error
		date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			logger.Error("get today challenge error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.GetActiveChallengeForDate(ctx, date, language)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			logger.Error("get today challenge error: no active challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no active challenge for this date", nil)
			return
		}
		logger.Error("get today challenge error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenge", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TodayChallengeResponse{
		ID:            challenge.ID.String(),
		ChallengeDate: challenge.ChallengeDate.Format(dateLayout),
		Language:      challenge.Language,
		Difficulty:    string(challenge.Difficulty),
	})
	logger.Info("today challenge provided")
}

// GetChallenge godoc
// @Summary Full challenge record
// @Tags challenges
// @Param id path string true "challenge id"
// @Success 200 {object} entity.Challenge
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /challenges/{id} [get]
func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.GetChallenge(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			logger.Error("get challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
			return
		}
		logger.Error("get challenge error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenge", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
	logger.Info("challenge provided")
}

// GetChallenges godoc
// @Summary List challenges of a language
// @Tags challenges
// @Param lang query string false "language code, default en"
// @Success 200 {object} api.GetChallengesResponse
// @Failure 401,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /challenges [get]
func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	language := r.URL.Query().Get("lang")
	if language == "" {
		language = "en"
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.ListChallenges(ctx, language, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("getting challenges list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenges list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetChallengesResponse{
		Language:   language,
		Page:       page,
		Limit:      limit,
		Challenges: challenges,
	})
	logger.Info("challenges provided")
}

// CreateChallenge godoc
// @Summary Create challenge (content management)
// @Tags challenges
// @Accept json
// @Param request body api.CreateChallengeRequest true "challenge"
// @Success 201 {object} map[string]any
// @Failure 400,401,409,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /challenges [post]
func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateChallengeRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := time.Parse(dateLayout, req.ChallengeDate)
	if err != nil {
		logger.Error("create challenge error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.CreateChallenge(ctx, &service.CreateChallengeRequest{
		ChallengeDate: date,
		Language:      req.Language,
		Word:          req.Word,
		Definition:    req.Definition,
		Example:       req.Example,
		Hint:          req.Hint,
		Difficulty:    entity.Difficulty(req.Difficulty),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeExists):
			logger.Error("create challenge error: attempt to create existed challenge")
			httputil.WriteErrorResponse(w, http.StatusConflict, "challenge for this date and language already exists", nil)
		case errors.Is(err, errorvalues.ErrInvalidChallenge):
			logger.Error("create challenge error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "challenge validation failed", err)
		default:
			logger.Error("create challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"challenge_id": challenge.ID.String()})
	logger.Info("challenge created")
}

// UpdateChallenge godoc
// @Summary Partially update challenge (content management)
// @Tags challenges
// @Accept json
// @Param id path string true "challenge id"
// @Param request body api.UpdateChallengeRequest true "fields to change"
// @Success 200 {object} entity.Challenge
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /challenges/{id} [patch]
func (s *Server) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	var req UpdateChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var difficulty *entity.Difficulty
	if req.Difficulty != nil {
		d := entity.Difficulty(*req.Difficulty)
		difficulty = &d
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.UpdateChallenge(ctx, id, &service.UpdateChallengeRequest{
		Word:       req.Word,
		Definition: req.Definition,
		Example:    req.Example,
		Hint:       req.Hint,
		Difficulty: difficulty,
		IsActive:   req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			logger.Error("update challenge error: unexist challenge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInvalidChallenge):
			logger.Error("update challenge error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "challenge validation failed", err)
		default:
			logger.Error("update challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
	logger.Info("challenge updated")
}
