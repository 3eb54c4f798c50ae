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

type taskService struct {
	tx          repository.TxManager
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	teamRepo    repository.TeamRepository
	stageRepo   repository.StageRepository
	userRepo    repository.UserRepository
	policy      *VisibilityPolicy
	log         *zap.SugaredLogger
	timeout     time.Duration
}

func NewTaskService(
	tx repository.TxManager,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	teamRepo repository.TeamRepository,
	stageRepo repository.StageRepository,
	userRepo repository.UserRepository,
	policy *VisibilityPolicy,
	log *zap.SugaredLogger,
	timeout time.Duration,
) TaskService {
	return &taskService{
		tx:          tx,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		teamRepo:    teamRepo,
		stageRepo:   stageRepo,
		userRepo:    userRepo,
		policy:      policy,
		log:         log.Named("task"),
		timeout:     timeout,
	}
}

// CreateTask сохраняет исполнителей без фильтрации по команде
func (s *taskService) CreateTask(ctx context.Context, caller domain.Caller, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	task.Name = strings.TrimSpace(task.Name)
	if task.Name == "" {
		return nil, domain.NewValidationError("task name is required")
	}

	assignees, err := domain.UniqueIDs(task.AssigneeIDs)
	if err != nil {
		return nil, err
	}
	task.AssigneeIDs = assignees
	task.CreatedBy = caller.UserID
	task.Active = true

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if task.ProjectID != nil {
			if err := s.ensureProjectUsable(ctx, caller, *task.ProjectID); err != nil {
				return err
			}
		}
		if task.StageID != nil {
			if _, err := s.stageRepo.GetByID(ctx, *task.StageID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.NewValidationError("unknown stage %d", *task.StageID)
				}
				return fmt.Errorf("get stage: %w", err)
			}
		}
		if err := ensureUsersExist(ctx, s.userRepo, assignees); err != nil {
			return err
		}
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("task created", "task_id", task.ID, "by", caller.UserID, "assignees", len(assignees))
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, caller domain.Caller, id int64) (*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	return s.loadVisible(ctx, caller, id)
}

func (s *taskService) ListTasks(ctx context.Context, caller domain.Caller) ([]*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	tasks, err := s.taskRepo.ListVisible(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// ChangeProject меняет проект задачи и в той же транзакции применяет OnProjectChanged
func (s *taskService) ChangeProject(ctx context.Context, caller domain.Caller, taskID int64, projectID *int64) (*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.loadVisible(ctx, caller, taskID); err != nil {
			return err
		}
		if projectID != nil {
			if err := s.ensureProjectUsable(ctx, caller, *projectID); err != nil {
				return err
			}
		}
		if err := s.taskRepo.SetProject(ctx, taskID, projectID); err != nil {
			return notFound(err, "task %d", taskID)
		}
		return s.OnProjectChanged(ctx, taskID)
	})
	if err != nil {
		return nil, err
	}

	return s.load(ctx, taskID)
}

// OnProjectChanged приводит исполнителей в соответствие с текущим проектом задачи:
// без проекта исполнители очищаются, в проекте с приватностью team остаются только
// участники команды. Повторный вызов ничего не меняет.
func (s *taskService) OnProjectChanged(ctx context.Context, taskID int64) error {
	task, err := s.load(ctx, taskID)
	if err != nil {
		return err
	}

	var kept []int64
	if task.ProjectID == nil {
		kept = domain.FilterAssignees(false, task.AssigneeIDs, nil)
	} else {
		project, err := s.projectRepo.GetByID(ctx, *task.ProjectID)
		if err != nil {
			return notFound(err, "project %d", *task.ProjectID)
		}
		if project.Privacy != domain.PrivacyTeam {
			return nil
		}
		members, err := s.policy.TeamMemberIDs(ctx, project.TeamID)
		if err != nil {
			return err
		}
		kept = domain.FilterAssignees(true, task.AssigneeIDs, members)
	}

	if domain.SameIDs(kept, task.AssigneeIDs) {
		return nil
	}
	if err := s.taskRepo.ReplaceAssignees(ctx, taskID, kept); err != nil {
		return fmt.Errorf("filter assignees: %w", err)
	}

	s.log.Infow("assignees filtered by project team",
		"task_id", taskID,
		"before", len(task.AssigneeIDs),
		"after", len(kept),
	)
	return nil
}

// SetAssignees записывает исполнителей напрямую, без проверки состава команды
func (s *taskService) SetAssignees(ctx context.Context, caller domain.Caller, taskID int64, userIDs []int64) (*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	ids, err := domain.UniqueIDs(userIDs)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.loadVisible(ctx, caller, taskID); err != nil {
			return err
		}
		if err := ensureUsersExist(ctx, s.userRepo, ids); err != nil {
			return err
		}
		return s.taskRepo.ReplaceAssignees(ctx, taskID, ids)
	})
	if err != nil {
		return nil, err
	}

	return s.load(ctx, taskID)
}

// SetProjectDirect пишет проект задачи без пересчета исполнителей
func (s *taskService) SetProjectDirect(ctx context.Context, caller domain.Caller, taskID int64, projectID *int64) (*domain.Task, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("write task projects directly"); err != nil {
		return nil, err
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if projectID != nil {
			if err := s.ensureProjectUsable(ctx, caller, *projectID); err != nil {
				return err
			}
		}
		return notFound(s.taskRepo.SetProject(ctx, taskID, projectID), "task %d", taskID)
	})
	if err != nil {
		return nil, err
	}

	return s.load(ctx, taskID)
}

// AssignableUsers возвращает участников команды проекта задачи
func (s *taskService) AssignableUsers(ctx context.Context, caller domain.Caller, taskID int64) ([]domain.TeamMember, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	task, err := s.loadVisible(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}
	if task.ProjectID == nil {
		return []domain.TeamMember{}, nil
	}

	project, err := s.projectRepo.GetByID(ctx, *task.ProjectID)
	if err != nil {
		return nil, notFound(err, "project %d", *task.ProjectID)
	}
	if project.TeamID == nil {
		return []domain.TeamMember{}, nil
	}

	members, err := s.teamRepo.GetMembers(ctx, *project.TeamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	return members, nil
}

// ensureProjectUsable: скрытый от вызывающего проект неотличим от несуществующего
func (s *taskService) ensureProjectUsable(ctx context.Context, caller domain.Caller, projectID int64) error {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewValidationError("unknown project %d", projectID)
		}
		return fmt.Errorf("get project: %w", err)
	}

	ok, err := s.policy.CanSeeProject(ctx, caller, project)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NewValidationError("unknown project %d", projectID)
	}
	return nil
}

func (s *taskService) loadVisible(ctx context.Context, caller domain.Caller, id int64) (*domain.Task, error) {
	task, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.policy.CanSeeTask(ctx, caller, task)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("task %d", id))
	}
	return task, nil
}

func (s *taskService) load(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "task %d", id)
	}
	return task, nil
}
