package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

type StageService interface {
	CreateStage(ctx context.Context, caller domain.Caller, stage *domain.Stage) (*domain.Stage, error)
	ListStages(ctx context.Context) ([]*domain.Stage, error)
}

type stageService struct {
	stageRepo repository.StageRepository
	timeout   time.Duration
}

func NewStageService(stageRepo repository.StageRepository, timeout time.Duration) StageService {
	return &stageService{stageRepo: stageRepo, timeout: timeout}
}

func (s *stageService) CreateStage(ctx context.Context, caller domain.Caller, stage *domain.Stage) (*domain.Stage, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("create stages"); err != nil {
		return nil, err
	}

	stage.Name = strings.TrimSpace(stage.Name)
	if stage.Name == "" {
		return nil, domain.NewValidationError("stage name is required")
	}

	if err := s.stageRepo.Create(ctx, stage); err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}
	return stage, nil
}

func (s *stageService) ListStages(ctx context.Context) ([]*domain.Stage, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	stages, err := s.stageRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	if stages == nil {
		stages = []*domain.Stage{}
	}
	return stages, nil
}
