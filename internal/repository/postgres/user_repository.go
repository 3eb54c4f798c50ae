package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

const userColumns = `u.id, u.partner_id, u.login, u.name, pa.email, u.is_active, u.is_share, u.is_manager, u.created_at, u.updated_at`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	exec := executor(ctx, r.db)
	now := time.Now()

	err := exec.QueryRowContext(
		ctx,
		`INSERT INTO partners (name, email, created_at) VALUES ($1, $2, $3) RETURNING id`,
		user.Name,
		user.Email,
		now,
	).Scan(&user.PartnerID)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (partner_id, login, name, is_active, is_share, is_manager, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err = exec.QueryRowContext(
		ctx,
		query,
		user.PartnerID,
		user.Login,
		user.Name,
		user.IsActive,
		user.IsShare,
		user.IsManager,
		now,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return err
	}
	user.UpdatedAt = nil

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN partners pa ON pa.id = u.partner_id
		WHERE u.id = $1
	`

	user, err := scanUser(executor(ctx, r.db).QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.PartnerID,
		&user.Login,
		&user.Name,
		&user.Email,
		&user.IsActive,
		&user.IsShare,
		&user.IsManager,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.UpdatedAt = nullTimePtr(updatedAt)
	return user, nil
}
