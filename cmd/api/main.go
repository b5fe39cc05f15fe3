// @title Daily Word Challenge API
// @description API for daily word-guessing app "Wordaday"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/wordaday/internal/api"
	"github.com/limbo/wordaday/internal/repository"
	"github.com/limbo/wordaday/internal/service"
	"github.com/limbo/wordaday/pkg/cleanup"
	"github.com/limbo/wordaday/pkg/config"
	jwtservice "github.com/limbo/wordaday/pkg/jwt_service"

	_ "github.com/limbo/wordaday/docs"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	challengesRepo := repository.NewChallengesRepo(&dbCfg)
	statsService := service.NewStatsService(repository.NewUserStatsRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(repository.NewUsersRepo(&dbCfg)),
		ChallengesService: service.NewChallengesService(challengesRepo),
		AttemptsService:   service.NewAttemptsService(challengesRepo, repository.NewAttemptsRepo(&dbCfg), statsService),
		StatsService:      statsService,
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
