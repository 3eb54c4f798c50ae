package service

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

// ProjectService управляет проектами с командной видимостью.
// Назначение или смена команды подписывает всех её участников на проект.
type ProjectService interface {
	CreateProject(ctx context.Context, caller domain.Caller, project *domain.Project) (*domain.Project, error)
	GetProject(ctx context.Context, caller domain.Caller, id int64) (*domain.Project, error)
	ListProjects(ctx context.Context, caller domain.Caller) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, caller domain.Caller, id int64, update domain.ProjectUpdate) (*domain.Project, error)
	SubscribeFollower(ctx context.Context, caller domain.Caller, projectID int64, partnerID int64) error
	Followers(ctx context.Context, caller domain.Caller, projectID int64) ([]domain.Partner, error)
}
