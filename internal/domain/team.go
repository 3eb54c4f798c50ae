package domain

import (
	"sort"
	"strings"
	"time"
)

type Team struct {
	ID          int64
	Name        string
	Active      bool
	MemberCount int
	Members     []TeamMember
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type TeamMember struct {
	UserID   int64
	Name     string
	IsActive bool
}

// MemberIDs возвращает идентификаторы участников в порядке хранения
func (t *Team) MemberIDs() []int64 {
	ids := make([]int64, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

func (t *Team) HasMember(userID int64) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// SortMembers упорядочивает участников по имени, при равных именах - по id
func (t *Team) SortMembers() {
	sort.SliceStable(t.Members, func(i, j int) bool {
		if t.Members[i].Name != t.Members[j].Name {
			return t.Members[i].Name < t.Members[j].Name
		}
		return t.Members[i].UserID < t.Members[j].UserID
	})
}

// NormalizeMemberIDs убирает дубликаты, сохраняя порядок первого появления.
// Пустой результат означает некорректный состав команды.
func NormalizeMemberIDs(ids []int64) ([]int64, error) {
	out, err := UniqueIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, NewValidationError("team must have at least one member")
	}
	return out, nil
}

func ValidateTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationError("team name is required")
	}
	return name, nil
}
