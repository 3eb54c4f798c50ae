package repository

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type UserRepository interface {
	// Create создает партнера и пользователя; должен вызываться внутри транзакции
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
