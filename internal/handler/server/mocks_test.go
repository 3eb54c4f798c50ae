package server

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCallerService struct {
	mock.Mock
}

func (m *MockCallerService) ResolveCaller(ctx context.Context, userID int64) (domain.Caller, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Caller), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, caller domain.Caller, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, caller, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockStageService struct {
	mock.Mock
}

func (m *MockStageService) CreateStage(ctx context.Context, caller domain.Caller, stage *domain.Stage) (*domain.Stage, error) {
	args := m.Called(ctx, caller, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stage), args.Error(1)
}

func (m *MockStageService) ListStages(ctx context.Context) ([]*domain.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Stage), args.Error(1)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) team(args mock.Arguments) (*domain.Team, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, caller domain.Caller, name string, memberIDs []int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, name, memberIDs))
}

func (m *MockTeamService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, id))
}

func (m *MockTeamService) ListTeams(ctx context.Context, includeInactive bool) ([]*domain.Team, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamService) AddMember(ctx context.Context, caller domain.Caller, teamID int64, userID int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, teamID, userID))
}

func (m *MockTeamService) RemoveMember(ctx context.Context, caller domain.Caller, teamID int64, userID int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, teamID, userID))
}

func (m *MockTeamService) SetMembers(ctx context.Context, caller domain.Caller, teamID int64, memberIDs []int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, teamID, memberIDs))
}

func (m *MockTeamService) RenameTeam(ctx context.Context, caller domain.Caller, teamID int64, name string) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, teamID, name))
}

func (m *MockTeamService) ArchiveTeam(ctx context.Context, caller domain.Caller, teamID int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, teamID))
}

func (m *MockTeamService) RestoreTeam(ctx context.Context, caller domain.Caller, teamID int64) (*domain.Team, error) {
	return m.team(m.Called(ctx, caller, teamID))
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, caller domain.Caller, teamID int64) error {
	args := m.Called(ctx, caller, teamID)
	return args.Error(0)
}

func (m *MockTeamService) TeamProjects(ctx context.Context, teamID int64) ([]*domain.Project, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) project(args mock.Arguments) (*domain.Project, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) CreateProject(ctx context.Context, caller domain.Caller, project *domain.Project) (*domain.Project, error) {
	return m.project(m.Called(ctx, caller, project))
}

func (m *MockProjectService) GetProject(ctx context.Context, caller domain.Caller, id int64) (*domain.Project, error) {
	return m.project(m.Called(ctx, caller, id))
}

func (m *MockProjectService) ListProjects(ctx context.Context, caller domain.Caller) ([]*domain.Project, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectService) UpdateProject(ctx context.Context, caller domain.Caller, id int64, update domain.ProjectUpdate) (*domain.Project, error) {
	return m.project(m.Called(ctx, caller, id, update))
}

func (m *MockProjectService) SubscribeFollower(ctx context.Context, caller domain.Caller, projectID int64, partnerID int64) error {
	args := m.Called(ctx, caller, projectID, partnerID)
	return args.Error(0)
}

func (m *MockProjectService) Followers(ctx context.Context, caller domain.Caller, projectID int64) ([]domain.Partner, error) {
	args := m.Called(ctx, caller, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) task(args mock.Arguments) (*domain.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) CreateTask(ctx context.Context, caller domain.Caller, task *domain.Task) (*domain.Task, error) {
	return m.task(m.Called(ctx, caller, task))
}

func (m *MockTaskService) GetTask(ctx context.Context, caller domain.Caller, id int64) (*domain.Task, error) {
	return m.task(m.Called(ctx, caller, id))
}

func (m *MockTaskService) ListTasks(ctx context.Context, caller domain.Caller) ([]*domain.Task, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskService) ChangeProject(ctx context.Context, caller domain.Caller, taskID int64, projectID *int64) (*domain.Task, error) {
	return m.task(m.Called(ctx, caller, taskID, projectID))
}

func (m *MockTaskService) OnProjectChanged(ctx context.Context, taskID int64) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

func (m *MockTaskService) SetAssignees(ctx context.Context, caller domain.Caller, taskID int64, userIDs []int64) (*domain.Task, error) {
	return m.task(m.Called(ctx, caller, taskID, userIDs))
}

func (m *MockTaskService) SetProjectDirect(ctx context.Context, caller domain.Caller, taskID int64, projectID *int64) (*domain.Task, error) {
	return m.task(m.Called(ctx, caller, taskID, projectID))
}

func (m *MockTaskService) AssignableUsers(ctx context.Context, caller domain.Caller, taskID int64) ([]domain.TeamMember, error) {
	args := m.Called(ctx, caller, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetTaskStatistics(ctx context.Context, caller domain.Caller, period string, assigneeID *int64) (*domain.TaskStatistics, error) {
	args := m.Called(ctx, caller, period, assigneeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskStatistics), args.Error(1)
}
