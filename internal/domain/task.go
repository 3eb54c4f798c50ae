package domain

import "time"

type Task struct {
	ID          int64
	Name        string
	ProjectID   *int64
	StageID     *int64
	CreatedBy   int64
	AssigneeIDs []int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (t *Task) IsAssignee(userID int64) bool {
	for _, id := range t.AssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// FilterAssignees оставляет только тех исполнителей, которые входят в команду проекта.
// Если проект не задан, исполнители очищаются полностью.
// Порядок оставшихся исполнителей сохраняется.
func FilterAssignees(hasProject bool, assignees []int64, teamMembers []int64) []int64 {
	if !hasProject {
		return []int64{}
	}

	allowed := make(map[int64]struct{}, len(teamMembers))
	for _, id := range teamMembers {
		allowed[id] = struct{}{}
	}

	kept := make([]int64, 0, len(assignees))
	for _, id := range assignees {
		if _, ok := allowed[id]; ok {
			kept = append(kept, id)
		}
	}
	return kept
}

// UniqueIDs убирает дубликаты с сохранением порядка; пустой список допустим
func UniqueIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, NewValidationError("invalid user id %d", id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// SameIDs сравнивает два набора идентификаторов без учета порядка
func SameIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int64]int, len(a))
	for _, id := range a {
		counts[id]++
	}
	for _, id := range b {
		counts[id]--
		if counts[id] < 0 {
			return false
		}
	}
	return true
}
