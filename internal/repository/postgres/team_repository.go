package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

// Create сохраняет только строку команды; участники добавляются через AddMember
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, is_active, member_count, created_at)
		VALUES ($1, $2, 0, $3)
		RETURNING id, created_at
	`

	err := executor(ctx, r.db).QueryRowContext(ctx, query, team.Name, team.Active, time.Now()).
		Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		return err
	}
	team.MemberCount = 0
	team.UpdatedAt = nil
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, name, is_active, member_count, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team, err := scanTeam(executor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	team.Members, err = r.GetMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	return team, nil
}

// LockByID блокирует строку команды до конца транзакции
func (r *teamRepository) LockByID(ctx context.Context, id int64) error {
	var locked int64
	err := executor(ctx, r.db).QueryRowContext(ctx, `SELECT id FROM teams WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func (r *teamRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Team, error) {
	query := `
		SELECT id, name, is_active, member_count, created_at, updated_at
		FROM teams
		WHERE is_active = TRUE OR $1 = TRUE
		ORDER BY name, id
	`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Rename(ctx context.Context, id int64, name string) error {
	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		`UPDATE teams SET name = $2, updated_at = $3 WHERE id = $1`,
		id,
		name,
		time.Now(),
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *teamRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		`UPDATE teams SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id,
		active,
		time.Now(),
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// Delete удаляет команду; членства удаляются каскадно
func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	result, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *teamRepository) AddMember(ctx context.Context, teamID int64, userID int64) error {
	query := `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (team_id, user_id) DO NOTHING
	`
	_, err := executor(ctx, r.db).ExecContext(ctx, query, teamID, userID)
	return err
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID int64, userID int64) error {
	_, err := executor(ctx, r.db).ExecContext(
		ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID,
		userID,
	)
	return err
}

func (r *teamRepository) ClearMembers(ctx context.Context, teamID int64) error {
	_, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID)
	return err
}

func (r *teamRepository) GetMembers(ctx context.Context, teamID int64) ([]domain.TeamMember, error) {
	query := `
		SELECT u.id, u.name, u.is_active
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY u.name, u.id
	`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.UserID, &m.Name, &m.IsActive); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *teamRepository) RefreshMemberCount(ctx context.Context, teamID int64) (int, error) {
	query := `
		UPDATE teams
		SET member_count = (SELECT COUNT(*) FROM team_members WHERE team_id = $1),
		    updated_at = $2
		WHERE id = $1
		RETURNING member_count
	`

	var count int
	err := executor(ctx, r.db).QueryRowContext(ctx, query, teamID, time.Now()).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, repository.ErrNotFound
		}
		return 0, err
	}
	return count, nil
}

func (r *teamRepository) CountProjects(ctx context.Context, teamID int64) (int, error) {
	var count int
	err := executor(ctx, r.db).QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE team_id = $1`, teamID).Scan(&count)
	return count, err
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Active,
		&team.MemberCount,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	team.UpdatedAt = nullTimePtr(updatedAt)
	return team, nil
}
