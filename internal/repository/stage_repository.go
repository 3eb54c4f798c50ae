package repository

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type StageRepository interface {
	Create(ctx context.Context, stage *domain.Stage) error
	GetByID(ctx context.Context, id int64) (*domain.Stage, error)
	List(ctx context.Context) ([]*domain.Stage, error)
}
