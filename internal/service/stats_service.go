package service

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type StatsService interface {
	// GetTaskStatistics считает задачи по этапам и исполнителям за период.
	// Неизвестный период трактуется как all.
	GetTaskStatistics(ctx context.Context, caller domain.Caller, period string, assigneeID *int64) (*domain.TaskStatistics, error)
}
