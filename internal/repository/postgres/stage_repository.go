package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

type stageRepository struct {
	db *sql.DB
}

func NewStageRepository(db *sql.DB) *stageRepository {
	return &stageRepository{db: db}
}

func (r *stageRepository) Create(ctx context.Context, stage *domain.Stage) error {
	query := `
		INSERT INTO stages (name, sequence, fold)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return executor(ctx, r.db).QueryRowContext(ctx, query, stage.Name, stage.Sequence, stage.Fold).Scan(&stage.ID)
}

func (r *stageRepository) GetByID(ctx context.Context, id int64) (*domain.Stage, error) {
	stage := &domain.Stage{}
	err := executor(ctx, r.db).QueryRowContext(
		ctx,
		`SELECT id, name, sequence, fold FROM stages WHERE id = $1`,
		id,
	).Scan(&stage.ID, &stage.Name, &stage.Sequence, &stage.Fold)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return stage, nil
}

func (r *stageRepository) List(ctx context.Context) ([]*domain.Stage, error) {
	rows, err := executor(ctx, r.db).QueryContext(ctx, `SELECT id, name, sequence, fold FROM stages ORDER BY sequence, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []*domain.Stage
	for rows.Next() {
		stage := &domain.Stage{}
		if err := rows.Scan(&stage.ID, &stage.Name, &stage.Sequence, &stage.Fold); err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	return stages, rows.Err()
}
