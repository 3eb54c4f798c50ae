package repository

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	// LockByID берет блокировку строки команды (SELECT ... FOR UPDATE); вызывается внутри транзакции
	LockByID(ctx context.Context, id int64) error
	List(ctx context.Context, includeInactive bool) ([]*domain.Team, error)
	Rename(ctx context.Context, id int64, name string) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
	AddMember(ctx context.Context, teamID int64, userID int64) error
	RemoveMember(ctx context.Context, teamID int64, userID int64) error
	ClearMembers(ctx context.Context, teamID int64) error
	GetMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error)
	// RefreshMemberCount пересчитывает member_count и возвращает новое значение
	RefreshMemberCount(ctx context.Context, teamID int64) (int, error)
	CountProjects(ctx context.Context, teamID int64) (int, error)
}
