// Package handler - HTTP-слой поверх fiber
package handler

import (
	"github.com/bagdasarian/project-team-rules/internal/service"
	"go.uber.org/zap"
)

// Services - набор сервисов, которые обслуживает HTTP-слой
type Services struct {
	Callers  service.CallerService
	Users    service.UserService
	Stages   service.StageService
	Teams    service.TeamService
	Projects service.ProjectService
	Tasks    service.TaskService
	Stats    service.StatsService
}

type Handler struct {
	callerService  service.CallerService
	userService    service.UserService
	stageService   service.StageService
	teamService    service.TeamService
	projectService service.ProjectService
	taskService    service.TaskService
	statsService   service.StatsService
	log            *zap.SugaredLogger
}

func NewHandler(s Services, log *zap.SugaredLogger) *Handler {
	return &Handler{
		callerService:  s.Callers,
		userService:    s.Users,
		stageService:   s.Stages,
		teamService:    s.Teams,
		projectService: s.Projects,
		taskService:    s.Tasks,
		statsService:   s.Stats,
		log:            log.Named("http"),
	}
}
