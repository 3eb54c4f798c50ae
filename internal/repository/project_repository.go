package repository

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	// ListVisible возвращает активные проекты, которые видит caller
	ListVisible(ctx context.Context, caller domain.Caller) ([]*domain.Project, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Project, error)
	AddFollower(ctx context.Context, projectID int64, partnerID int64) error
	// SubscribeTeamMembers подписывает партнеров всех участников команды на проект
	SubscribeTeamMembers(ctx context.Context, projectID int64, teamID int64) error
	GetFollowers(ctx context.Context, projectID int64) ([]domain.Partner, error)
}
