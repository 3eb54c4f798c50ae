package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

const projectColumns = `p.id, p.name, p.privacy, p.team_id, p.is_active, p.created_at, p.updated_at`

// projectVisibleClause - SQL-версия правила видимости проекта для алиаса p.
// Параметры: $1 - менеджер, $2 - partner_id, $3 - user_id, $4 - внешний пользователь.
const projectVisibleClause = `(
		$1 = TRUE
		OR EXISTS (SELECT 1 FROM project_followers pf WHERE pf.project_id = p.id AND pf.partner_id = $2)
		OR (p.privacy = 'team' AND EXISTS (
			SELECT 1 FROM team_members vtm WHERE vtm.team_id = p.team_id AND vtm.user_id = $3
		))
		OR (p.privacy = 'employees' AND $4 = FALSE)
	)`

func callerArgs(caller domain.Caller) []any {
	return []any{caller.IsManager, caller.PartnerID, caller.UserID, caller.IsShare}
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *projectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (name, privacy, team_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := executor(ctx, r.db).QueryRowContext(
		ctx,
		query,
		project.Name,
		string(project.Privacy),
		int64Arg(project.TeamID),
		project.Active,
		time.Now(),
	).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		return err
	}
	project.UpdatedAt = nil
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = $1`

	project, err := scanProject(executor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET name = $2, privacy = $3, team_id = $4, updated_at = $5
		WHERE id = $1
		RETURNING updated_at
	`

	var updatedAt sql.NullTime
	err := executor(ctx, r.db).QueryRowContext(
		ctx,
		query,
		project.ID,
		project.Name,
		string(project.Privacy),
		int64Arg(project.TeamID),
		time.Now(),
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	project.UpdatedAt = nullTimePtr(updatedAt)
	return nil
}

func (r *projectRepository) ListVisible(ctx context.Context, caller domain.Caller) ([]*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.is_active = TRUE AND ` + projectVisibleClause + `
		ORDER BY p.name, p.id
	`
	return r.list(ctx, query, callerArgs(caller)...)
}

func (r *projectRepository) ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.team_id = $1
		ORDER BY p.name, p.id
	`
	return r.list(ctx, query, teamID)
}

func (r *projectRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := executor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *projectRepository) AddFollower(ctx context.Context, projectID int64, partnerID int64) error {
	query := `
		INSERT INTO project_followers (project_id, partner_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, partner_id) DO NOTHING
	`
	_, err := executor(ctx, r.db).ExecContext(ctx, query, projectID, partnerID)
	return err
}

func (r *projectRepository) SubscribeTeamMembers(ctx context.Context, projectID int64, teamID int64) error {
	query := `
		INSERT INTO project_followers (project_id, partner_id)
		SELECT $1, u.partner_id
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $2
		ON CONFLICT (project_id, partner_id) DO NOTHING
	`
	_, err := executor(ctx, r.db).ExecContext(ctx, query, projectID, teamID)
	return err
}

func (r *projectRepository) GetFollowers(ctx context.Context, projectID int64) ([]domain.Partner, error) {
	query := `
		SELECT pa.id, pa.name, pa.email
		FROM project_followers pf
		JOIN partners pa ON pa.id = pf.partner_id
		WHERE pf.project_id = $1
		ORDER BY pa.name, pa.id
	`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]domain.Partner, 0)
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Email); err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, rows.Err()
}

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var (
		privacy   string
		teamID    sql.NullInt64
		updatedAt sql.NullTime
	)
	err := row.Scan(
		&project.ID,
		&project.Name,
		&privacy,
		&teamID,
		&project.Active,
		&project.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.Privacy = domain.Privacy(privacy)
	project.TeamID = nullInt64Ptr(teamID)
	project.UpdatedAt = nullTimePtr(updatedAt)
	return project, nil
}
