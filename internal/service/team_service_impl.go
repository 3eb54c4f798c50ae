package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
	"go.uber.org/zap"
)

type teamService struct {
	tx          repository.TxManager
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	log         *zap.SugaredLogger
	timeout     time.Duration
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	tx repository.TxManager,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	log *zap.SugaredLogger,
	timeout time.Duration,
) TeamService {
	return &teamService{
		tx:          tx,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		log:         log.Named("team"),
		timeout:     timeout,
	}
}

// CreateTeam создает команду с участниками; member_count выставляется в той же транзакции
func (s *teamService) CreateTeam(ctx context.Context, caller domain.Caller, name string, memberIDs []int64) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("create teams"); err != nil {
		return nil, err
	}

	name, err := domain.ValidateTeamName(name)
	if err != nil {
		return nil, err
	}
	ids, err := domain.NormalizeMemberIDs(memberIDs)
	if err != nil {
		return nil, err
	}

	team := &domain.Team{Name: name, Active: true}
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := ensureUsersExist(ctx, s.userRepo, ids); err != nil {
			return err
		}
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		return s.writeMembers(ctx, team.ID, ids)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("team created", "team_id", team.ID, "name", name, "members", len(ids), "by", caller.UserID)
	return s.load(ctx, team.ID)
}

func (s *teamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.load(ctx, id)
}

func (s *teamService) ListTeams(ctx context.Context, includeInactive bool) ([]*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	teams, err := s.teamRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	if teams == nil {
		teams = []*domain.Team{}
	}
	return teams, nil
}

// AddMember идемпотентен: повторное добавление ничего не меняет
func (s *teamService) AddMember(ctx context.Context, caller domain.Caller, teamID int64, userID int64) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("change team members"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.load(ctx, teamID); err != nil {
			return err
		}
		if err := ensureUsersExist(ctx, s.userRepo, []int64{userID}); err != nil {
			return err
		}
		if err := s.teamRepo.AddMember(ctx, teamID, userID); err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		_, err := s.teamRepo.RefreshMemberCount(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("team member added", "team_id", teamID, "user_id", userID)
	return s.load(ctx, teamID)
}

// RemoveMember не дает оставить команду пустой
func (s *teamService) RemoveMember(ctx context.Context, caller domain.Caller, teamID int64, userID int64) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("change team members"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lock(ctx, teamID); err != nil {
			return err
		}
		team, err := s.load(ctx, teamID)
		if err != nil {
			return err
		}
		if !team.HasMember(userID) {
			return nil
		}
		if len(team.Members) == 1 {
			return domain.NewValidationError("team must have at least one member")
		}
		if err := s.teamRepo.RemoveMember(ctx, teamID, userID); err != nil {
			return fmt.Errorf("remove member: %w", err)
		}
		_, err = s.teamRepo.RefreshMemberCount(ctx, teamID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("team member removed", "team_id", teamID, "user_id", userID)
	return s.load(ctx, teamID)
}

func (s *teamService) SetMembers(ctx context.Context, caller domain.Caller, teamID int64, memberIDs []int64) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("change team members"); err != nil {
		return nil, err
	}

	ids, err := domain.NormalizeMemberIDs(memberIDs)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.lock(ctx, teamID); err != nil {
			return err
		}
		if err := ensureUsersExist(ctx, s.userRepo, ids); err != nil {
			return err
		}
		if err := s.teamRepo.ClearMembers(ctx, teamID); err != nil {
			return fmt.Errorf("clear members: %w", err)
		}
		return s.writeMembers(ctx, teamID, ids)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("team members replaced", "team_id", teamID, "members", len(ids))
	return s.load(ctx, teamID)
}

func (s *teamService) RenameTeam(ctx context.Context, caller domain.Caller, teamID int64, name string) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("rename teams"); err != nil {
		return nil, err
	}

	name, err := domain.ValidateTeamName(name)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Rename(ctx, teamID, name); err != nil {
		return nil, notFound(err, "team %d", teamID)
	}
	return s.load(ctx, teamID)
}

func (s *teamService) ArchiveTeam(ctx context.Context, caller domain.Caller, teamID int64) (*domain.Team, error) {
	return s.setActive(ctx, caller, teamID, false)
}

func (s *teamService) RestoreTeam(ctx context.Context, caller domain.Caller, teamID int64) (*domain.Team, error) {
	return s.setActive(ctx, caller, teamID, true)
}

func (s *teamService) setActive(ctx context.Context, caller domain.Caller, teamID int64, active bool) (*domain.Team, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("archive teams"); err != nil {
		return nil, err
	}

	if err := s.teamRepo.SetActive(ctx, teamID, active); err != nil {
		return nil, notFound(err, "team %d", teamID)
	}

	s.log.Infow("team activity changed", "team_id", teamID, "active", active)
	return s.load(ctx, teamID)
}

// DeleteTeam запрещен, пока на команду ссылается хотя бы один проект
func (s *teamService) DeleteTeam(ctx context.Context, caller domain.Caller, teamID int64) error {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("delete teams"); err != nil {
		return err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.load(ctx, teamID); err != nil {
			return err
		}
		n, err := s.teamRepo.CountProjects(ctx, teamID)
		if err != nil {
			return fmt.Errorf("count team projects: %w", err)
		}
		if n > 0 {
			return &domain.DomainError{
				Code:    domain.CodeTeamInUse,
				Message: fmt.Sprintf("team %d is assigned to %d project(s)", teamID, n),
			}
		}
		return notFound(s.teamRepo.Delete(ctx, teamID), "team %d", teamID)
	})
	if err != nil {
		return err
	}

	s.log.Infow("team deleted", "team_id", teamID)
	return nil
}

func (s *teamService) TeamProjects(ctx context.Context, teamID int64) ([]*domain.Project, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.load(ctx, teamID); err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team projects: %w", err)
	}
	return projects, nil
}

// writeMembers добавляет участников и пересчитывает member_count
func (s *teamService) writeMembers(ctx context.Context, teamID int64, ids []int64) error {
	for _, id := range ids {
		if err := s.teamRepo.AddMember(ctx, teamID, id); err != nil {
			return fmt.Errorf("add member %d: %w", id, err)
		}
	}
	count, err := s.teamRepo.RefreshMemberCount(ctx, teamID)
	if err != nil {
		return fmt.Errorf("refresh member count: %w", err)
	}
	if count != len(ids) {
		s.log.Warnw("member count mismatch", "team_id", teamID, "expected", len(ids), "actual", count)
	}
	return nil
}

// lock сериализует изменения состава одной команды до конца транзакции
func (s *teamService) lock(ctx context.Context, teamID int64) error {
	if err := s.teamRepo.LockByID(ctx, teamID); err != nil {
		return notFound(err, "team %d", teamID)
	}
	return nil
}

func (s *teamService) load(ctx context.Context, id int64) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "team %d", id)
	}
	return team, nil
}
