package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/wordaday/internal/api"
	errorvalues "github.com/limbo/wordaday/internal/error_values"
	"github.com/limbo/wordaday/internal/service"
	"github.com/limbo/wordaday/internal/service/mocks"
	"github.com/limbo/wordaday/pkg/entity"
	jwtservice "github.com/limbo/wordaday/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type UserServiceMock struct {
	success bool
}

func (usmock *UserServiceMock) ChangeState(success bool) {
	usmock.success = success
}

func (usmock *UserServiceMock) Register(ctx context.Context, req *service.RegisterRequest) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) Login(ctx context.Context, name, password string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) GetByName(ctx context.Context, name string) (*entity.User, error) {
	if usmock.success {
		return &entity.User{
			ID:           uid,
			Name:         username,
			PasswordHash: string(passwordHash),
		}, nil
	}
	return nil, errors.New("mocked error")
}

func (usmock *UserServiceMock) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	if usmock.success {
		return nil
	}
	return errors.New("mocked error")
}

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	uid             = uuid.New()
	day             = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestRegister(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/register", nil)
		mock.ChangeState(true)
		serv.Register(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLogin(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Name:     username,
		Password: password,
	})
	if err != nil {
		t.Fatal(err)
	}
	var req *http.Request
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtservice.New("secret"),
	})
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		mock.ChangeState(true)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		mock.ChangeState(false)
		serv.Login(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwtservice.New("secret")
	mock := UserServiceMock{}
	serv := api.New(&api.ServicesList{
		UserService: &mock,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(&entity.User{
		ID:   uid,
		Name: username,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Run("successful auth", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		mock.ChangeState(true)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("malformed token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestSubmitAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAttemptsServiceI(ctrl)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AttemptsService:   aService,
		ChallengesService: cService,
	})
	challengeID := uuid.New()
	correct := true
	body, err := sonic.ConfigDefault.Marshal(api.SubmitAttemptRequest{
		ChallengeID: challengeID.String(),
		Guess:       "serendipity",
		IsCorrect:   &correct,
	})
	require.NoError(t, err)
	wrongBody, err := sonic.ConfigDefault.Marshal(api.SubmitAttemptRequest{
		ChallengeID: challengeID.String(),
		Guess:       "nope",
	})
	require.NoError(t, err)
	correctReq := service.RecordAttemptRequest{
		ChallengeID:   challengeID,
		Guess:         "serendipity",
		IsCorrect:     true,
		AttemptNumber: 1,
	}
	wrongReq := service.RecordAttemptRequest{
		ChallengeID:   challengeID,
		Guess:         "nope",
		IsCorrect:     false,
		AttemptNumber: 1,
	}
	solvedStats := entity.UserStats{
		UserID:         uid,
		TotalPlayed:    1,
		TotalSolved:    1,
		CurrentStreak:  1,
		BestStreak:     1,
		LastPlayedDate: day,
		LastSolvedDate: &day,
	}
	t.Run("correct guess discloses solution", func(t *testing.T) {
		aService.EXPECT().RecordAttempt(gomock.Any(), uid, &correctReq).Return(&entity.Attempt{
			ID:          uuid.New(),
			ChallengeID: challengeID,
			UserID:      uid,
			Guess:       "serendipity",
			IsCorrect:   true,
		}, &solvedStats, nil)
		cService.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(&entity.Challenge{
			ID:         challengeID,
			Word:       "serendipity",
			Definition: "def",
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		var resp api.SubmitAttemptResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		require.NotNil(t, resp.Solution)
		assert.Equal(t, "serendipity", resp.Solution.Word)
		assert.Equal(t, 1, resp.Stats.CurrentStreak)
	})
	t.Run("wrong guess keeps solution hidden", func(t *testing.T) {
		aService.EXPECT().RecordAttempt(gomock.Any(), uid, &wrongReq).Return(&entity.Attempt{
			ID:          uuid.New(),
			ChallengeID: challengeID,
			UserID:      uid,
			Guess:       "nope",
		}, &entity.UserStats{UserID: uid, TotalPlayed: 1}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(wrongBody))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		var resp api.SubmitAttemptResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Nil(t, resp.Solution)
	})
	t.Run("challenge not found", func(t *testing.T) {
		aService.EXPECT().RecordAttempt(gomock.Any(), uid, &correctReq).Return(nil, nil, errorvalues.ErrChallengeNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("inactive challenge", func(t *testing.T) {
		aService.EXPECT().RecordAttempt(gomock.Any(), uid, &correctReq).Return(nil, nil, errorvalues.ErrChallengeInactive)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("validation failed", func(t *testing.T) {
		aService.EXPECT().RecordAttempt(gomock.Any(), uid, &correctReq).Return(nil, nil, errorvalues.ErrInvalidAttempt)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		aService.EXPECT().RecordAttempt(gomock.Any(), uid, &correctReq).Return(nil, nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("invalid challenge id", func(t *testing.T) {
		badBody, _ := sonic.ConfigDefault.Marshal(api.SubmitAttemptRequest{
			ChallengeID: "not-a-uuid",
			Guess:       "serendipity",
		})
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(badBody))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("corrupted body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader([]byte("corrupted")))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		serv.SubmitAttempt(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAttemptsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		AttemptsService: aService,
	})
	challengeID := uuid.New()
	t.Run("paginated history", func(t *testing.T) {
		aService.EXPECT().ListAttempts(gomock.Any(), uid, service.PaginationOpts{
			Limit:  5,
			Offset: 5,
		}).Return([]*entity.Attempt{
			{ID: uuid.New(), UserID: uid},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/attempts", nil)
		q := r.URL.Query()
		q.Add("limit", strconv.Itoa(5))
		q.Add("page", strconv.Itoa(2))
		r.URL.RawQuery = q.Encode()
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetAttempts(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetAttemptsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 1, len(resp.Attempts))
	})
	t.Run("filtered by challenge", func(t *testing.T) {
		aService.EXPECT().ListChallengeAttempts(gomock.Any(), uid, challengeID).Return([]*entity.Attempt{
			{ID: uuid.New(), UserID: uid, ChallengeID: challengeID, AttemptNumber: 1},
			{ID: uuid.New(), UserID: uid, ChallengeID: challengeID, AttemptNumber: 2},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/attempts?challenge_id="+challengeID.String(), nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetAttempts(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetAttemptsResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 2, len(resp.Attempts))
	})
	t.Run("invalid challenge id filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/attempts?challenge_id=bad", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetAttempts(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		aService.EXPECT().ListAttempts(gomock.Any(), uid, service.PaginationOpts{
			Limit:  10,
			Offset: 0,
		}).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/attempts", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetAttempts(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/attempts", nil)
		serv.GetAttempts(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	t.Run("success", func(t *testing.T) {
		sService.EXPECT().GetStats(gomock.Any(), uid).Return(&entity.UserStats{
			UserID:        uid,
			TotalPlayed:   10,
			TotalSolved:   7,
			CurrentStreak: 3,
			BestStreak:    5,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp entity.UserStats
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 10, resp.TotalPlayed)
		assert.Equal(t, 3, resp.CurrentStreak)
	})
	t.Run("no stats yet", func(t *testing.T) {
		sService.EXPECT().GetStats(gomock.Any(), uid).Return(nil, errorvalues.ErrStatsNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().GetStats(gomock.Any(), uid).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestGetTodayChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: cService,
	})
	challengeID := uuid.New()
	t.Run("answer stays hidden", func(t *testing.T) {
		cService.EXPECT().GetActiveChallengeForDate(gomock.Any(), day, "en").Return(&entity.Challenge{
			ID:            challengeID,
			ChallengeDate: day,
			Language:      "en",
			Word:          "serendipity",
			Definition:    "secret",
			Hint:          "secret",
			Difficulty:    entity.DifficultyMedium,
			IsActive:      true,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/today?date=2025-01-01", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetTodayChallenge(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		resp := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, challengeID.String(), resp["id"])
		assert.Equal(t, "2025-01-01", resp["challenge_date"])
		assert.NotContains(t, resp, "word")
		assert.NotContains(t, resp, "definition")
		assert.NotContains(t, resp, "hint")
	})
	t.Run("explicit language", func(t *testing.T) {
		cService.EXPECT().GetActiveChallengeForDate(gomock.Any(), day, "pt-br").Return(&entity.Challenge{
			ID:            challengeID,
			ChallengeDate: day,
			Language:      "pt-br",
			Difficulty:    entity.DifficultyEasy,
			IsActive:      true,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/today?date=2025-01-01&lang=pt-br", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetTodayChallenge(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("invalid date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/today?date=01.01.2025", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetTodayChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("no active challenge", func(t *testing.T) {
		cService.EXPECT().GetActiveChallengeForDate(gomock.Any(), day, "en").Return(nil, errorvalues.ErrChallengeNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/today?date=2025-01-01", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetTodayChallenge(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestGetChallengeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: cService,
	})
	challengeID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		PathID       string
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			PathID:       challengeID.String(),
			MockPrepFunc: func() {
				cService.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(&entity.Challenge{
					ID:   challengeID,
					Word: "serendipity",
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			PathID:       challengeID.String(),
			MockPrepFunc: func() {
				cService.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(nil, errorvalues.ErrChallengeNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			PathID:       challengeID.String(),
			MockPrepFunc: func() {
				cService.EXPECT().GetChallenge(gomock.Any(), challengeID).Return(nil, errors.New("service error"))
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			PathID:       "not-a-uuid",
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges/"+tc.PathID, nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		r.SetPathValue("id", tc.PathID)
		serv.GetChallenge(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetChallenges(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: cService,
	})
	challenges := make([]*entity.Challenge, 0, 10)
	for i := 0; i < cap(challenges); i++ {
		challenges = append(challenges, &entity.Challenge{
			ID:            uuid.New(),
			ChallengeDate: day.AddDate(0, 0, -i),
			Language:      "en",
		})
	}
	t.Run("success", func(t *testing.T) {
		cService.EXPECT().ListChallenges(gomock.Any(), "en", service.PaginationOpts{
			Limit:  10,
			Offset: 0,
		}).Return(challenges, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetChallenges(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetChallengesResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp)
		require.NoError(t, err)
		assert.Equal(t, 10, len(resp.Challenges))
	})
	t.Run("service error", func(t *testing.T) {
		cService.EXPECT().ListChallenges(gomock.Any(), "en", service.PaginationOpts{
			Limit:  10,
			Offset: 0,
		}).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.GetChallenges(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestCreateChallengeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: cService,
	})
	challengeID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.CreateChallengeRequest{
		ChallengeDate: "2025-01-01",
		Language:      "en",
		Word:          "serendipity",
		Difficulty:    "hard",
	})
	require.NoError(t, err)
	expectedReq := service.CreateChallengeRequest{
		ChallengeDate: day,
		Language:      "en",
		Word:          "serendipity",
		Difficulty:    entity.DifficultyHard,
	}
	t.Run("created", func(t *testing.T) {
		cService.EXPECT().CreateChallenge(gomock.Any(), &expectedReq).Return(&entity.Challenge{
			ID: challengeID,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/challenges", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.CreateChallenge(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("conflict", func(t *testing.T) {
		cService.EXPECT().CreateChallenge(gomock.Any(), &expectedReq).Return(nil, errorvalues.ErrChallengeExists)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/challenges", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.CreateChallenge(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("validation failed", func(t *testing.T) {
		cService.EXPECT().CreateChallenge(gomock.Any(), &expectedReq).Return(nil, errorvalues.ErrInvalidChallenge)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/challenges", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.CreateChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("invalid date", func(t *testing.T) {
		badBody, _ := sonic.ConfigDefault.Marshal(api.CreateChallengeRequest{
			ChallengeDate: "01.01.2025",
			Language:      "en",
			Word:          "serendipity",
		})
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/challenges", bytes.NewReader(badBody))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.CreateChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("corrupted body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/challenges", bytes.NewReader([]byte("corrupted")))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		serv.CreateChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestUpdateChallengeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: cService,
	})
	challengeID := uuid.New()
	newHint := "new hint"
	body, err := sonic.ConfigDefault.Marshal(api.UpdateChallengeRequest{
		Hint: &newHint,
	})
	require.NoError(t, err)
	t.Run("updated", func(t *testing.T) {
		cService.EXPECT().UpdateChallenge(gomock.Any(), challengeID, &service.UpdateChallengeRequest{
			Hint: &newHint,
		}).Return(&entity.Challenge{
			ID:   challengeID,
			Hint: newHint,
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/challenges/"+challengeID.String(), bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		r.SetPathValue("id", challengeID.String())
		serv.UpdateChallenge(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("not found", func(t *testing.T) {
		cService.EXPECT().UpdateChallenge(gomock.Any(), challengeID, &service.UpdateChallengeRequest{
			Hint: &newHint,
		}).Return(nil, errorvalues.ErrChallengeNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/challenges/"+challengeID.String(), bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		r.SetPathValue("id", challengeID.String())
		serv.UpdateChallenge(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid id in path", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/challenges/bad", bytes.NewReader(body))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		r.SetPathValue("id", "bad")
		serv.UpdateChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("corrupted body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/api/v1/challenges/"+challengeID.String(), bytes.NewReader([]byte("corrupted")))
		r = r.WithContext(context.WithValue(r.Context(), "User-ID", uid))
		r.SetPathValue("id", challengeID.String())
		serv.UpdateChallenge(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}
