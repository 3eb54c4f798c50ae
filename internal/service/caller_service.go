package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
)

// CallerService определяет, от чьего имени выполняется запрос
type CallerService interface {
	ResolveCaller(ctx context.Context, userID int64) (domain.Caller, error)
}

type callerService struct {
	userRepo repository.UserRepository
	timeout  time.Duration
}

func NewCallerService(userRepo repository.UserRepository, timeout time.Duration) CallerService {
	return &callerService{userRepo: userRepo, timeout: timeout}
}

// ResolveCaller отказывает неизвестным и неактивным пользователям
func (s *callerService) ResolveCaller(ctx context.Context, userID int64) (domain.Caller, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Caller{}, domain.NewAccessError("unknown user %d", userID)
		}
		return domain.Caller{}, fmt.Errorf("resolve caller: %w", err)
	}
	if !user.IsActive {
		return domain.Caller{}, domain.NewAccessError("user %d is inactive", userID)
	}
	return domain.CallerFromUser(user), nil
}
