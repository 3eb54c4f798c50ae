package service

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

// TeamService - реестр команд. Все изменения доступны только менеджерам.
type TeamService interface {
	CreateTeam(ctx context.Context, caller domain.Caller, name string, memberIDs []int64) (*domain.Team, error)
	GetTeam(ctx context.Context, id int64) (*domain.Team, error)
	ListTeams(ctx context.Context, includeInactive bool) ([]*domain.Team, error)
	AddMember(ctx context.Context, caller domain.Caller, teamID int64, userID int64) (*domain.Team, error)
	RemoveMember(ctx context.Context, caller domain.Caller, teamID int64, userID int64) (*domain.Team, error)
	SetMembers(ctx context.Context, caller domain.Caller, teamID int64, memberIDs []int64) (*domain.Team, error)
	RenameTeam(ctx context.Context, caller domain.Caller, teamID int64, name string) (*domain.Team, error)
	ArchiveTeam(ctx context.Context, caller domain.Caller, teamID int64) (*domain.Team, error)
	RestoreTeam(ctx context.Context, caller domain.Caller, teamID int64) (*domain.Team, error)
	DeleteTeam(ctx context.Context, caller domain.Caller, teamID int64) error
	TeamProjects(ctx context.Context, teamID int64) ([]*domain.Project, error)
}
