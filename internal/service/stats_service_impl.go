package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
	"go.uber.org/zap"
)

type statsService struct {
	tx        repository.TxManager
	statsRepo repository.StatsRepository
	log       *zap.SugaredLogger
	timeout   time.Duration
	loc       *time.Location
	now       func() time.Time
}

func NewStatsService(
	tx repository.TxManager,
	statsRepo repository.StatsRepository,
	log *zap.SugaredLogger,
	timeout time.Duration,
	loc *time.Location,
) StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &statsService{
		tx:        tx,
		statsRepo: statsRepo,
		log:       log.Named("stats"),
		timeout:   timeout,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *statsService) GetTaskStatistics(ctx context.Context, caller domain.Caller, rawPeriod string, assigneeID *int64) (*domain.TaskStatistics, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	period, known := domain.ParsePeriod(rawPeriod)
	if !known && strings.TrimSpace(rawPeriod) != "" {
		s.log.Debugw("unknown period, using all", "period", rawPeriod)
	}

	from, to := period.Range(s.now().In(s.loc))
	filter := domain.TaskFilter{CreatedFrom: from, CreatedTo: to, AssigneeID: assigneeID}
	scope := domain.EligibleUsersScope{}
	if !caller.IsManager {
		userID := caller.UserID
		filter.ScopeUserID = &userID
		scope.ScopeUserID = &userID
	}

	var (
		stageGroups []domain.StageGroupCount
		users       []*domain.User
		pairs       []domain.AssigneeStageGroupCount
	)
	err := s.tx.WithinReadTx(ctx, func(ctx context.Context) error {
		var err error
		if stageGroups, err = s.statsRepo.CountByStage(ctx, filter); err != nil {
			return fmt.Errorf("count by stage: %w", err)
		}
		if users, err = s.statsRepo.EligibleUsers(ctx, scope); err != nil {
			return fmt.Errorf("eligible users: %w", err)
		}
		if pairs, err = s.statsRepo.CountByAssigneeStage(ctx, filter.WithoutAssignee()); err != nil {
			return fmt.Errorf("count by assignee: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats := &domain.TaskStatistics{Period: period}
	stats.TotalTasks, stats.Stages = aggregateStages(stageGroups)
	stats.Assignees = aggregateAssignees(users, pairs)

	s.log.Debugw("task statistics computed",
		"caller", caller.UserID,
		"period", period,
		"total", stats.TotalTasks,
		"assignees", len(stats.Assignees),
	)
	return stats, nil
}

type stageBucket struct {
	name        string
	minSequence int
	count       int
}

// aggregateStages: задачи без этапа входят в total, но не дают отдельной строки
func aggregateStages(groups []domain.StageGroupCount) (int, []domain.StageCount) {
	total := 0
	buckets := make([]stageBucket, 0, len(groups))
	for _, g := range groups {
		total += g.Count
		if g.StageName == nil {
			continue
		}
		buckets = append(buckets, stageBucket{name: *g.StageName, minSequence: g.MinSequence, count: g.Count})
	}
	return total, toStageCounts(buckets)
}

func aggregateAssignees(users []*domain.User, pairs []domain.AssigneeStageGroupCount) []domain.AssigneeStats {
	type acc struct {
		total   int
		buckets []stageBucket
	}

	byUser := make(map[int64]*acc, len(users))
	for _, u := range users {
		byUser[u.ID] = &acc{}
	}

	for _, p := range pairs {
		a, ok := byUser[p.UserID]
		if !ok {
			continue
		}
		// задачи без этапа входят в total пользователя, как и в общий total
		a.total += p.Count
		if p.StageName != nil {
			a.buckets = append(a.buckets, stageBucket{name: *p.StageName, minSequence: p.MinSequence, count: p.Count})
		}
	}

	result := make([]domain.AssigneeStats, 0, len(users))
	for _, u := range users {
		a := byUser[u.ID]
		result = append(result, domain.AssigneeStats{
			UserID:     u.ID,
			Name:       u.Name,
			TotalTasks: a.total,
			Stages:     toStageCounts(a.buckets),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].UserID < result[j].UserID
	})
	return result
}

// toStageCounts упорядочивает этапы по минимальному sequence, затем по имени
func toStageCounts(buckets []stageBucket) []domain.StageCount {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].minSequence != buckets[j].minSequence {
			return buckets[i].minSequence < buckets[j].minSequence
		}
		return buckets[i].name < buckets[j].name
	})

	out := make([]domain.StageCount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, domain.StageCount{Name: b.name, Count: b.count})
	}
	return out
}
