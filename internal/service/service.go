// Package service содержит бизнес-логику: реестр команд, политику видимости и статистику задач
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// notFound переводит repository.ErrNotFound в доменную ошибку NOT_FOUND
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(fmt.Sprintf(format, args...))
	}
	return err
}

// ensureUsersExist проверяет, что все пользователи существуют
func ensureUsersExist(ctx context.Context, userRepo repository.UserRepository, ids []int64) error {
	for _, id := range ids {
		if _, err := userRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NewValidationError("unknown user id %d", id)
			}
			return fmt.Errorf("get user %d: %w", id, err)
		}
	}
	return nil
}
