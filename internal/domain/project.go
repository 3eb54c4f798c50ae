package domain

import "time"

type Privacy string

const (
	// PrivacyTeam - проект видят участники команды проекта и подписчики
	PrivacyTeam Privacy = "team"
	// PrivacyFollowers - проект видят только подписчики
	PrivacyFollowers Privacy = "followers"
	// PrivacyEmployees - проект видят все внутренние пользователи
	PrivacyEmployees Privacy = "employees"
)

func (p Privacy) Valid() bool {
	switch p {
	case PrivacyTeam, PrivacyFollowers, PrivacyEmployees:
		return true
	default:
		return false
	}
}

type Project struct {
	ID        int64
	Name      string
	Privacy   Privacy
	TeamID    *int64
	Active    bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// ProjectUpdate - частичное изменение проекта; nil означает "не менять"
type ProjectUpdate struct {
	Name    *string
	Privacy *Privacy
	TeamID  *int64
}

// TeamChanged сообщает, меняет ли обновление команду проекта
func (u ProjectUpdate) TeamChanged(current *int64) bool {
	if u.TeamID == nil {
		return false
	}
	return current == nil || *current != *u.TeamID
}
