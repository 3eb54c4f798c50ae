package repository

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ListVisible(ctx context.Context, caller domain.Caller) ([]*domain.Task, error)
	SetProject(ctx context.Context, taskID int64, projectID *int64) error
	ReplaceAssignees(ctx context.Context, taskID int64, userIDs []int64) error
}
