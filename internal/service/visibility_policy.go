package service

import (
	"context"
	"fmt"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

// VisibilityPolicy загружает данные для правил видимости из domain
// и проверяет их для отдельных записей
type VisibilityPolicy struct {
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
}

func NewVisibilityPolicy(projectRepo repository.ProjectRepository, teamRepo repository.TeamRepository) *VisibilityPolicy {
	return &VisibilityPolicy{projectRepo: projectRepo, teamRepo: teamRepo}
}

// TeamMemberIDs возвращает участников команды; для nil - пустой список
func (p *VisibilityPolicy) TeamMemberIDs(ctx context.Context, teamID *int64) ([]int64, error) {
	if teamID == nil {
		return []int64{}, nil
	}
	members, err := p.teamRepo.GetMembers(ctx, *teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	team := domain.Team{Members: members}
	return team.MemberIDs(), nil
}

func (p *VisibilityPolicy) ProjectAccess(ctx context.Context, project *domain.Project) (domain.ProjectAccess, error) {
	members, err := p.TeamMemberIDs(ctx, project.TeamID)
	if err != nil {
		return domain.ProjectAccess{}, err
	}

	followers, err := p.projectRepo.GetFollowers(ctx, project.ID)
	if err != nil {
		return domain.ProjectAccess{}, fmt.Errorf("get followers: %w", err)
	}
	partnerIDs := make([]int64, 0, len(followers))
	for _, f := range followers {
		partnerIDs = append(partnerIDs, f.ID)
	}

	return domain.ProjectAccess{
		Project:            *project,
		TeamMemberIDs:      members,
		FollowerPartnerIDs: partnerIDs,
	}, nil
}

func (p *VisibilityPolicy) CanSeeProject(ctx context.Context, caller domain.Caller, project *domain.Project) (bool, error) {
	if caller.IsManager {
		return true, nil
	}
	access, err := p.ProjectAccess(ctx, project)
	if err != nil {
		return false, err
	}
	return caller.CanSeeProject(access), nil
}

func (p *VisibilityPolicy) CanSeeTask(ctx context.Context, caller domain.Caller, task *domain.Task) (bool, error) {
	if caller.IsManager || task.CreatedBy == caller.UserID || task.IsAssignee(caller.UserID) {
		return true, nil
	}
	if task.ProjectID == nil {
		return caller.CanSeeTask(*task, nil), nil
	}

	project, err := p.projectRepo.GetByID(ctx, *task.ProjectID)
	if err != nil {
		return false, fmt.Errorf("get task project: %w", err)
	}
	access, err := p.ProjectAccess(ctx, project)
	if err != nil {
		return false, err
	}
	return caller.CanSeeTask(*task, &access), nil
}
