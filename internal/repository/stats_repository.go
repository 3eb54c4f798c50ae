package repository

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type StatsRepository interface {
	CountByStage(ctx context.Context, filter domain.TaskFilter) ([]domain.StageGroupCount, error)
	CountByAssigneeStage(ctx context.Context, filter domain.TaskFilter) ([]domain.AssigneeStageGroupCount, error)
	EligibleUsers(ctx context.Context, scope domain.EligibleUsersScope) ([]*domain.User, error)
}
