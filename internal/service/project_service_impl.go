package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
	"go.uber.org/zap"
)

type projectService struct {
	tx          repository.TxManager
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
	policy      *VisibilityPolicy
	log         *zap.SugaredLogger
	timeout     time.Duration
}

func NewProjectService(
	tx repository.TxManager,
	projectRepo repository.ProjectRepository,
	teamRepo repository.TeamRepository,
	policy *VisibilityPolicy,
	log *zap.SugaredLogger,
	timeout time.Duration,
) ProjectService {
	return &projectService{
		tx:          tx,
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
		policy:      policy,
		log:         log.Named("project"),
		timeout:     timeout,
	}
}

func (s *projectService) CreateProject(ctx context.Context, caller domain.Caller, project *domain.Project) (*domain.Project, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("create projects"); err != nil {
		return nil, err
	}

	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return nil, domain.NewValidationError("project name is required")
	}
	if project.Privacy == "" {
		project.Privacy = domain.PrivacyTeam
	}
	if !project.Privacy.Valid() {
		return nil, domain.NewValidationError("unknown privacy mode %q", project.Privacy)
	}
	if project.TeamID == nil {
		return nil, domain.NewValidationError("project team is required")
	}
	project.Active = true

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureTeamExists(ctx, *project.TeamID); err != nil {
			return err
		}
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return s.subscribeTeam(ctx, project.ID, *project.TeamID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("project created", "project_id", project.ID, "team_id", *project.TeamID, "privacy", project.Privacy)
	return project, nil
}

// GetProject возвращает NOT_FOUND, если проект скрыт от вызывающего
func (s *projectService) GetProject(ctx context.Context, caller domain.Caller, id int64) (*domain.Project, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.loadVisible(ctx, caller, id)
}

func (s *projectService) ListProjects(ctx context.Context, caller domain.Caller) ([]*domain.Project, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	projects, err := s.projectRepo.ListVisible(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, caller domain.Caller, id int64, update domain.ProjectUpdate) (*domain.Project, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("update projects"); err != nil {
		return nil, err
	}

	var project *domain.Project
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.projectRepo.GetByID(ctx, id)
		if err != nil {
			return notFound(err, "project %d", id)
		}

		teamChanged := update.TeamChanged(project.TeamID)

		if update.Name != nil {
			name := strings.TrimSpace(*update.Name)
			if name == "" {
				return domain.NewValidationError("project name is required")
			}
			project.Name = name
		}
		if update.Privacy != nil {
			if !update.Privacy.Valid() {
				return domain.NewValidationError("unknown privacy mode %q", *update.Privacy)
			}
			project.Privacy = *update.Privacy
		}
		if teamChanged {
			if err := s.ensureTeamExists(ctx, *update.TeamID); err != nil {
				return err
			}
			teamID := *update.TeamID
			project.TeamID = &teamID
		}

		if err := s.projectRepo.Update(ctx, project); err != nil {
			return notFound(err, "project %d", id)
		}
		if teamChanged {
			return s.subscribeTeam(ctx, project.ID, *project.TeamID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) SubscribeFollower(ctx context.Context, caller domain.Caller, projectID int64, partnerID int64) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("manage followers"); err != nil {
		return err
	}
	if partnerID <= 0 {
		return domain.NewValidationError("invalid partner id %d", partnerID)
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return notFound(err, "project %d", projectID)
	}
	if err := s.projectRepo.AddFollower(ctx, projectID, partnerID); err != nil {
		return fmt.Errorf("add follower: %w", err)
	}
	return nil
}

func (s *projectService) Followers(ctx context.Context, caller domain.Caller, projectID int64) ([]domain.Partner, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.loadVisible(ctx, caller, projectID); err != nil {
		return nil, err
	}

	followers, err := s.projectRepo.GetFollowers(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get followers: %w", err)
	}
	return followers, nil
}

func (s *projectService) loadVisible(ctx context.Context, caller domain.Caller, id int64) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "project %d", id)
	}

	ok, err := s.policy.CanSeeProject(ctx, caller, project)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("project %d", id))
	}
	return project, nil
}

func (s *projectService) ensureTeamExists(ctx context.Context, teamID int64) error {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewValidationError("unknown team %d", teamID)
		}
		return fmt.Errorf("get team: %w", err)
	}
	return nil
}

// subscribeTeam только добавляет подписчиков; старые подписки не удаляются
func (s *projectService) subscribeTeam(ctx context.Context, projectID int64, teamID int64) error {
	if err := s.projectRepo.SubscribeTeamMembers(ctx, projectID, teamID); err != nil {
		return fmt.Errorf("subscribe team members: %w", err)
	}
	s.log.Debugw("team members subscribed", "project_id", projectID, "team_id", teamID)
	return nil
}
