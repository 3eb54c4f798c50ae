package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{db: db}
}

// buildTaskWhere собирает WHERE для задач (алиас t); условия объединяются через AND
func buildTaskWhere(filter domain.TaskFilter) (string, []any) {
	conds := []string{"t.is_active = TRUE"}
	var args []any

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CreatedFrom != nil {
		conds = append(conds, "t.created_at >= "+next(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		conds = append(conds, "t.created_at < "+next(*filter.CreatedTo))
	}
	if filter.AssigneeID != nil {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM task_assignees fa WHERE fa.task_id = t.id AND fa.user_id = %s)",
			next(*filter.AssigneeID),
		))
	}
	if filter.ScopeUserID != nil {
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1
			FROM projects sp
			JOIN teams st ON st.id = sp.team_id AND st.is_active = TRUE
			JOIN team_members stm ON stm.team_id = st.id
			WHERE sp.id = t.project_id AND sp.is_active = TRUE AND stm.user_id = %s
		)`, next(*filter.ScopeUserID)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// CountByStage группирует задачи по имени этапа; задачи без этапа дают строку с NULL
func (r *statsRepository) CountByStage(ctx context.Context, filter domain.TaskFilter) ([]domain.StageGroupCount, error) {
	where, args := buildTaskWhere(filter)
	query := `
		SELECT s.name, COALESCE(MIN(s.sequence), 0), COUNT(t.id)
		FROM tasks t
		LEFT JOIN stages s ON s.id = t.stage_id
		` + where + `
		GROUP BY s.name
		ORDER BY MIN(s.sequence), s.name
	`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.StageGroupCount
	for rows.Next() {
		var (
			g    domain.StageGroupCount
			name sql.NullString
		)
		if err := rows.Scan(&name, &g.MinSequence, &g.Count); err != nil {
			return nil, err
		}
		g.StageName = nullStringPtr(name)
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// CountByAssigneeStage считает задачи по паре (исполнитель, этап).
// Задача с несколькими исполнителями учитывается у каждого из них.
func (r *statsRepository) CountByAssigneeStage(ctx context.Context, filter domain.TaskFilter) ([]domain.AssigneeStageGroupCount, error) {
	where, args := buildTaskWhere(filter)
	query := `
		SELECT ta.user_id, s.name, COALESCE(MIN(s.sequence), 0), COUNT(t.id)
		FROM tasks t
		JOIN task_assignees ta ON ta.task_id = t.id
		LEFT JOIN stages s ON s.id = t.stage_id
		` + where + `
		GROUP BY ta.user_id, s.name
		ORDER BY ta.user_id, MIN(s.sequence), s.name
	`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.AssigneeStageGroupCount
	for rows.Next() {
		var (
			g    domain.AssigneeStageGroupCount
			name sql.NullString
		)
		if err := rows.Scan(&g.UserID, &name, &g.MinSequence, &g.Count); err != nil {
			return nil, err
		}
		g.StageName = nullStringPtr(name)
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

// EligibleUsers возвращает активных внутренних пользователей.
// Для ограниченного scope - только участников активных команд с активными проектами,
// в которые входит пользователь scope.
func (r *statsRepository) EligibleUsers(ctx context.Context, scope domain.EligibleUsersScope) ([]*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN partners pa ON pa.id = u.partner_id
		WHERE u.is_active = TRUE AND u.is_share = FALSE`
	var args []any

	if scope.ScopeUserID != nil {
		query += `
		AND u.id IN (
			SELECT tm.user_id
			FROM team_members tm
			JOIN teams et ON et.id = tm.team_id AND et.is_active = TRUE
			WHERE EXISTS (SELECT 1 FROM projects ep WHERE ep.team_id = et.id AND ep.is_active = TRUE)
			AND EXISTS (SELECT 1 FROM team_members me WHERE me.team_id = et.id AND me.user_id = $1)
		)`
		args = append(args, *scope.ScopeUserID)
	}
	query += `
		ORDER BY u.name, u.id`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
