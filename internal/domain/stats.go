package domain

import "time"

// StageCount - количество задач на этапе (этапы с одинаковым именем объединяются)
type StageCount struct {
	Name  string
	Count int
}

// AssigneeStats - статистика по одному пользователю
type AssigneeStats struct {
	UserID     int64
	Name       string
	TotalTasks int
	Stages     []StageCount
}

// TaskStatistics - результат агрегации, не хранится и пересчитывается на каждый запрос
type TaskStatistics struct {
	Period     Period
	TotalTasks int
	Stages     []StageCount
	Assignees  []AssigneeStats
}

// TaskFilter описывает выборку задач для агрегации.
// Все заданные условия объединяются через AND.
type TaskFilter struct {
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	AssigneeID  *int64
	// ScopeUserID ограничивает задачи проектами команд, в которые входит пользователь
	ScopeUserID *int64
}

// WithoutAssignee возвращает копию фильтра без ограничения по исполнителю
func (f TaskFilter) WithoutAssignee() TaskFilter {
	f.AssigneeID = nil
	return f
}

// StageGroupCount - строка группировки по имени этапа
type StageGroupCount struct {
	StageName   *string
	MinSequence int
	Count       int
}

// AssigneeStageGroupCount - строка группировки по (исполнитель, этап)
type AssigneeStageGroupCount struct {
	UserID      int64
	StageName   *string
	MinSequence int
	Count       int
}

// EligibleUsersScope задает круг пользователей, по которым строится статистика
type EligibleUsersScope struct {
	// ScopeUserID != nil - только участники команд, видимых этому пользователю
	ScopeUserID *int64
}
