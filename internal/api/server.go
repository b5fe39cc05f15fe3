package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/limbo/wordaday/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	challengesService service.ChallengesServiceI
	attemptsService   service.AttemptsServiceI
	statsService      service.StatsServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	ChallengesService service.ChallengesServiceI
	AttemptsService   service.AttemptsServiceI
	StatsService      service.StatsServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		challengesService: servicesOptions.ChallengesService,
		attemptsService:   servicesOptions.AttemptsService,
		statsService:      servicesOptions.StatsService,
		jwtService:        servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/challenges/today", s.GetTodayChallenge)
			r.Post("/challenges", s.CreateChallenge)
			r.Get("/challenges", s.GetChallenges)
			r.Get("/challenges/{id}", s.GetChallenge)
			r.Patch("/challenges/{id}", s.UpdateChallenge)
			r.Post("/attempts", s.SubmitAttempt)
			r.Get("/attempts", s.GetAttempts)
			r.Get("/stats", s.GetStats)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
