package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

const taskColumns = `t.id, t.name, t.project_id, t.stage_id, t.created_by, t.is_active, t.created_at, t.updated_at,
		COALESCE((SELECT string_agg(ta.user_id::text, ',' ORDER BY ta.user_id) FROM task_assignees ta WHERE ta.task_id = t.id), '')`

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{db: db}
}

// Create сохраняет задачу вместе с исполнителями; исполнители пишутся как есть
func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (name, project_id, stage_id, created_by, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := executor(ctx, r.db).QueryRowContext(
		ctx,
		query,
		task.Name,
		int64Arg(task.ProjectID),
		int64Arg(task.StageID),
		task.CreatedBy,
		task.Active,
		time.Now(),
	).Scan(&task.ID, &task.CreatedAt)
	if err != nil {
		return err
	}
	task.UpdatedAt = nil

	return r.insertAssignees(ctx, task.ID, task.AssigneeIDs)
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`

	task, err := scanTask(executor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

// ListVisible: менеджер видит всё, автор и исполнители видят свои задачи,
// остальные - задачи видимых проектов
func (r *taskRepository) ListVisible(ctx context.Context, caller domain.Caller) ([]*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE t.is_active = TRUE AND (
			$1 = TRUE
			OR t.created_by = $3
			OR EXISTS (SELECT 1 FROM task_assignees mine WHERE mine.task_id = t.id AND mine.user_id = $3)
			OR (p.id IS NOT NULL AND ` + projectVisibleClause + `)
		)
		ORDER BY t.id
	`

	rows, err := executor(ctx, r.db).QueryContext(ctx, query, callerArgs(caller)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) SetProject(ctx context.Context, taskID int64, projectID *int64) error {
	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		`UPDATE tasks SET project_id = $2, updated_at = $3 WHERE id = $1`,
		taskID,
		int64Arg(projectID),
		time.Now(),
	)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *taskRepository) ReplaceAssignees(ctx context.Context, taskID int64, userIDs []int64) error {
	_, err := executor(ctx, r.db).ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = $1`, taskID)
	if err != nil {
		return err
	}
	return r.insertAssignees(ctx, taskID, userIDs)
}

func (r *taskRepository) insertAssignees(ctx context.Context, taskID int64, userIDs []int64) error {
	exec := executor(ctx, r.db)
	for _, userID := range userIDs {
		_, err := exec.ExecContext(
			ctx,
			`INSERT INTO task_assignees (task_id, user_id) VALUES ($1, $2) ON CONFLICT (task_id, user_id) DO NOTHING`,
			taskID,
			userID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var (
		projectID sql.NullInt64
		stageID   sql.NullInt64
		updatedAt sql.NullTime
		assignees string
	)
	err := row.Scan(
		&task.ID,
		&task.Name,
		&projectID,
		&stageID,
		&task.CreatedBy,
		&task.Active,
		&task.CreatedAt,
		&updatedAt,
		&assignees,
	)
	if err != nil {
		return nil, err
	}
	task.ProjectID = nullInt64Ptr(projectID)
	task.StageID = nullInt64Ptr(stageID)
	task.UpdatedAt = nullTimePtr(updatedAt)

	task.AssigneeIDs, err = parseIDList(assignees)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// parseIDList разбирает результат string_agg вида "1,2,3"
func parseIDList(raw string) ([]int64, error) {
	ids := make([]int64, 0)
	if raw == "" {
		return ids, nil
	}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse assignee id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
