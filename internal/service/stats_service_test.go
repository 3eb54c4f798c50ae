package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupStatsService(now time.Time) (*statsService, *MockStatsRepository, *stubTx) {
	repo := new(MockStatsRepository)
	tx := &stubTx{}
	svc := NewStatsService(tx, repo, logger.Nop(), time.Second, time.UTC).(*statsService)
	svc.now = func() time.Time { return now }
	return svc, repo, tx
}

func strPtr(s string) *string {
	return &s
}

// среда, 14 октября 2026
var statsNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func TestStatsService_AliceBob(t *testing.T) {
	svc, repo, tx := setupStatsService(statsNow)

	alice := &domain.User{ID: 2, Name: "Alice", IsActive: true}
	bob := &domain.User{ID: 3, Name: "Bob", IsActive: true}

	repo.On("CountByStage", mock.Anything, domain.TaskFilter{}).Return([]domain.StageGroupCount{
		{StageName: strPtr("Done"), MinSequence: 30, Count: 1},
		{StageName: strPtr("To Do"), MinSequence: 10, Count: 3},
	}, nil).Once()
	repo.On("EligibleUsers", mock.Anything, domain.EligibleUsersScope{}).Return([]*domain.User{alice, bob}, nil).Once()
	repo.On("CountByAssigneeStage", mock.Anything, domain.TaskFilter{}).Return([]domain.AssigneeStageGroupCount{
		{UserID: 2, StageName: strPtr("To Do"), MinSequence: 10, Count: 2},
		{UserID: 2, StageName: strPtr("Done"), MinSequence: 30, Count: 1},
		{UserID: 3, StageName: strPtr("To Do"), MinSequence: 10, Count: 1},
	}, nil).Once()

	stats, err := svc.GetTaskStatistics(context.Background(), manager, "all", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.PeriodAll, stats.Period)
	assert.Equal(t, 4, stats.TotalTasks)
	assert.Equal(t, []domain.StageCount{{Name: "To Do", Count: 3}, {Name: "Done", Count: 1}}, stats.Stages)
	require.Len(t, stats.Assignees, 2)
	assert.Equal(t, domain.AssigneeStats{
		UserID:     2,
		Name:       "Alice",
		TotalTasks: 3,
		Stages:     []domain.StageCount{{Name: "To Do", Count: 2}, {Name: "Done", Count: 1}},
	}, stats.Assignees[0])
	assert.Equal(t, 1, stats.Assignees[1].TotalTasks)
	assert.Equal(t, 1, tx.reads, "все запросы выполняются в одной транзакции чтения")
	repo.AssertExpectations(t)
}

func TestStatsService_SumOfStagesEqualsTotal(t *testing.T) {
	svc, repo, _ := setupStatsService(statsNow)

	repo.On("CountByStage", mock.Anything, mock.Anything).Return([]domain.StageGroupCount{
		{StageName: strPtr("To Do"), MinSequence: 10, Count: 5},
		{StageName: strPtr("Review"), MinSequence: 20, Count: 2},
		{StageName: strPtr("Done"), MinSequence: 30, Count: 4},
	}, nil).Once()
	repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{}, nil).Once()
	repo.On("CountByAssigneeStage", mock.Anything, mock.Anything).Return([]domain.AssigneeStageGroupCount{}, nil).Once()

	stats, err := svc.GetTaskStatistics(context.Background(), manager, "", nil)

	require.NoError(t, err)
	sum := 0
	for _, s := range stats.Stages {
		sum += s.Count
	}
	assert.Equal(t, stats.TotalTasks, sum)
}

func TestStatsService_StagelessTasks(t *testing.T) {
	svc, repo, _ := setupStatsService(statsNow)

	repo.On("CountByStage", mock.Anything, mock.Anything).Return([]domain.StageGroupCount{
		{StageName: nil, Count: 2},
		{StageName: strPtr("To Do"), MinSequence: 10, Count: 1},
	}, nil).Once()
	repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{{ID: 2, Name: "Alice"}}, nil).Once()
	repo.On("CountByAssigneeStage", mock.Anything, mock.Anything).Return([]domain.AssigneeStageGroupCount{
		{UserID: 2, StageName: nil, Count: 2},
	}, nil).Once()

	stats, err := svc.GetTaskStatistics(context.Background(), manager, "all", nil)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTasks, "задачи без этапа входят в total")
	assert.Equal(t, []domain.StageCount{{Name: "To Do", Count: 1}}, stats.Stages)
	assert.Equal(t, 2, stats.Assignees[0].TotalTasks, "total пользователя тоже включает задачи без этапа")
	assert.Empty(t, stats.Assignees[0].Stages)
}

func TestStatsService_ZeroTaskUsersAndIneligible(t *testing.T) {
	svc, repo, _ := setupStatsService(statsNow)

	repo.On("CountByStage", mock.Anything, mock.Anything).Return([]domain.StageGroupCount{
		{StageName: strPtr("To Do"), MinSequence: 10, Count: 1},
	}, nil).Once()
	repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{
		{ID: 4, Name: "Carol"},
		{ID: 2, Name: "Alice"},
	}, nil).Once()
	repo.On("CountByAssigneeStage", mock.Anything, mock.Anything).Return([]domain.AssigneeStageGroupCount{
		{UserID: 2, StageName: strPtr("To Do"), MinSequence: 10, Count: 1},
		{UserID: 99, StageName: strPtr("To Do"), MinSequence: 10, Count: 1},
	}, nil).Once()

	stats, err := svc.GetTaskStatistics(context.Background(), manager, "all", nil)

	require.NoError(t, err)
	require.Len(t, stats.Assignees, 2, "пользователь 99 не входит в круг и отбрасывается")
	assert.Equal(t, "Alice", stats.Assignees[0].Name)
	assert.Equal(t, "Carol", stats.Assignees[1].Name)
	assert.Equal(t, 0, stats.Assignees[1].TotalTasks)
	assert.NotNil(t, stats.Assignees[1].Stages)
	assert.Empty(t, stats.Assignees[1].Stages)
}

func TestStatsService_SameNameTieBreakByID(t *testing.T) {
	svc, repo, _ := setupStatsService(statsNow)

	repo.On("CountByStage", mock.Anything, mock.Anything).Return([]domain.StageGroupCount{}, nil).Once()
	repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{
		{ID: 9, Name: "Sam"},
		{ID: 5, Name: "Sam"},
	}, nil).Once()
	repo.On("CountByAssigneeStage", mock.Anything, mock.Anything).Return([]domain.AssigneeStageGroupCount{}, nil).Once()

	stats, err := svc.GetTaskStatistics(context.Background(), manager, "all", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Assignees[0].UserID)
	assert.Equal(t, int64(9), stats.Assignees[1].UserID)
}

func TestStatsService_FilterConstruction(t *testing.T) {
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	t.Run("this_week для сотрудника: период и командный scope", func(t *testing.T) {
		svc, repo, _ := setupStatsService(statsNow)

		isScoped := mock.MatchedBy(func(f domain.TaskFilter) bool {
			return f.CreatedFrom != nil && f.CreatedFrom.Equal(monday) &&
				f.CreatedTo == nil &&
				f.ScopeUserID != nil && *f.ScopeUserID == employee.UserID
		})
		repo.On("CountByStage", mock.Anything, isScoped).Return([]domain.StageGroupCount{}, nil).Once()
		repo.On("EligibleUsers", mock.Anything, domain.EligibleUsersScope{ScopeUserID: int64Ptr(employee.UserID)}).
			Return([]*domain.User{}, nil).Once()
		repo.On("CountByAssigneeStage", mock.Anything, isScoped).Return([]domain.AssigneeStageGroupCount{}, nil).Once()

		stats, err := svc.GetTaskStatistics(context.Background(), employee, "this_week", nil)

		require.NoError(t, err)
		assert.Equal(t, domain.PeriodThisWeek, stats.Period)
		repo.AssertExpectations(t)
	})

	t.Run("prev_week ограничен с двух сторон", func(t *testing.T) {
		svc, repo, _ := setupStatsService(statsNow)

		prevWeek := mock.MatchedBy(func(f domain.TaskFilter) bool {
			return f.CreatedFrom != nil && f.CreatedFrom.Equal(monday.AddDate(0, 0, -7)) &&
				f.CreatedTo != nil && f.CreatedTo.Equal(monday)
		})
		repo.On("CountByStage", mock.Anything, prevWeek).Return([]domain.StageGroupCount{}, nil).Once()
		repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{}, nil).Once()
		repo.On("CountByAssigneeStage", mock.Anything, prevWeek).Return([]domain.AssigneeStageGroupCount{}, nil).Once()

		_, err := svc.GetTaskStatistics(context.Background(), manager, "prev_week", nil)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("фильтр по исполнителю не применяется к разбивке по пользователям", func(t *testing.T) {
		svc, repo, _ := setupStatsService(statsNow)

		repo.On("CountByStage", mock.Anything, domain.TaskFilter{AssigneeID: int64Ptr(2)}).
			Return([]domain.StageGroupCount{}, nil).Once()
		repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{}, nil).Once()
		repo.On("CountByAssigneeStage", mock.Anything, domain.TaskFilter{}).
			Return([]domain.AssigneeStageGroupCount{}, nil).Once()

		_, err := svc.GetTaskStatistics(context.Background(), manager, "all", int64Ptr(2))

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("неизвестный период трактуется как all", func(t *testing.T) {
		svc, repo, _ := setupStatsService(statsNow)

		repo.On("CountByStage", mock.Anything, domain.TaskFilter{}).Return([]domain.StageGroupCount{}, nil).Once()
		repo.On("EligibleUsers", mock.Anything, mock.Anything).Return([]*domain.User{}, nil).Once()
		repo.On("CountByAssigneeStage", mock.Anything, domain.TaskFilter{}).Return([]domain.AssigneeStageGroupCount{}, nil).Once()

		stats, err := svc.GetTaskStatistics(context.Background(), manager, "last_century", nil)

		require.NoError(t, err)
		assert.Equal(t, domain.PeriodAll, stats.Period)
		assert.Equal(t, 0, stats.TotalTasks)
		assert.NotNil(t, stats.Stages)
		assert.NotNil(t, stats.Assignees)
	})
}

func TestStatsService_RepositoryError(t *testing.T) {
	svc, repo, _ := setupStatsService(statsNow)

	dbErr := errors.New("connection reset")
	repo.On("CountByStage", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	stats, err := svc.GetTaskStatistics(context.Background(), manager, "all", nil)

	assert.Nil(t, stats)
	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "EligibleUsers", mock.Anything, mock.Anything)
}
