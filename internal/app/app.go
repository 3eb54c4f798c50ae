// Package app собирает репозитории, сервисы и HTTP-сервер в одно приложение
package app

import (
	"database/sql"

	"github.com/bagdasarian/project-team-rules/internal/config"
	"github.com/bagdasarian/project-team-rules/internal/handler"
	"github.com/bagdasarian/project-team-rules/internal/handler/server"
	"github.com/bagdasarian/project-team-rules/internal/repository/postgres"
	"github.com/bagdasarian/project-team-rules/internal/service"
	"go.uber.org/zap"
)

func NewServer(cfg *config.Config, database *sql.DB, log *zap.SugaredLogger) *server.Server {
	timeout := cfg.HTTP.RequestTimeout

	tx := postgres.NewTxManager(database)
	teamRepo := postgres.NewTeamRepository(database)
	userRepo := postgres.NewUserRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	stageRepo := postgres.NewStageRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	policy := service.NewVisibilityPolicy(projectRepo, teamRepo)

	h := handler.NewHandler(handler.Services{
		Callers:  service.NewCallerService(userRepo, timeout),
		Users:    service.NewUserService(tx, userRepo, log, timeout),
		Stages:   service.NewStageService(stageRepo, timeout),
		Teams:    service.NewTeamService(tx, teamRepo, userRepo, projectRepo, log, timeout),
		Projects: service.NewProjectService(tx, projectRepo, teamRepo, policy, log, timeout),
		Tasks:    service.NewTaskService(tx, taskRepo, projectRepo, teamRepo, stageRepo, userRepo, policy, log, timeout),
		Stats:    service.NewStatsService(tx, statsRepo, log, timeout, cfg.Location()),
	}, log)

	return server.NewServer(h, cfg.ServerAddr(), timeout, log)
}
