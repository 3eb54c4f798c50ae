package service

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/stretchr/testify/mock"
)

// stubTx выполняет функцию сразу, считая вызовы
type stubTx struct {
	writes int
	reads  int
}

func (s *stubTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.writes++
	return fn(ctx)
}

func (s *stubTx) WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.reads++
	return fn(ctx)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) LockByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Team, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) Rename(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockTeamRepository) SetActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, teamID int64, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID int64, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) ClearMembers(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockTeamRepository) GetMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) RefreshMemberCount(ctx context.Context, teamID int64) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

func (m *MockTeamRepository) CountProjects(ctx context.Context, teamID int64) (int, error) {
	args := m.Called(ctx, teamID)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) ListVisible(ctx context.Context, caller domain.Caller) ([]*domain.Project, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Project, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) AddFollower(ctx context.Context, projectID int64, partnerID int64) error {
	args := m.Called(ctx, projectID, partnerID)
	return args.Error(0)
}

func (m *MockProjectRepository) SubscribeTeamMembers(ctx context.Context, projectID int64, teamID int64) error {
	args := m.Called(ctx, projectID, teamID)
	return args.Error(0)
}

func (m *MockProjectRepository) GetFollowers(ctx context.Context, projectID int64) ([]domain.Partner, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListVisible(ctx context.Context, caller domain.Caller) ([]*domain.Task, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) SetProject(ctx context.Context, taskID int64, projectID *int64) error {
	args := m.Called(ctx, taskID, projectID)
	return args.Error(0)
}

func (m *MockTaskRepository) ReplaceAssignees(ctx context.Context, taskID int64, userIDs []int64) error {
	args := m.Called(ctx, taskID, userIDs)
	return args.Error(0)
}

type MockStageRepository struct {
	mock.Mock
}

func (m *MockStageRepository) Create(ctx context.Context, stage *domain.Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *MockStageRepository) GetByID(ctx context.Context, id int64) (*domain.Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stage), args.Error(1)
}

func (m *MockStageRepository) List(ctx context.Context) ([]*domain.Stage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Stage), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountByStage(ctx context.Context, filter domain.TaskFilter) ([]domain.StageGroupCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StageGroupCount), args.Error(1)
}

func (m *MockStatsRepository) CountByAssigneeStage(ctx context.Context, filter domain.TaskFilter) ([]domain.AssigneeStageGroupCount, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssigneeStageGroupCount), args.Error(1)
}

func (m *MockStatsRepository) EligibleUsers(ctx context.Context, scope domain.EligibleUsersScope) ([]*domain.User, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

var (
	manager  = domain.Caller{UserID: 1, PartnerID: 101, Name: "Admin", IsManager: true}
	employee = domain.Caller{UserID: 2, PartnerID: 102, Name: "Alice"}
)

func int64Ptr(v int64) *int64 {
	return &v
}
