package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/repository"
	"go.uber.org/zap"
)

type userService struct {
	tx       repository.TxManager
	userRepo repository.UserRepository
	log      *zap.SugaredLogger
	timeout  time.Duration
}

func NewUserService(tx repository.TxManager, userRepo repository.UserRepository, log *zap.SugaredLogger, timeout time.Duration) UserService {
	return &userService{
		tx:       tx,
		userRepo: userRepo,
		log:      log.Named("user"),
		timeout:  timeout,
	}
}

// CreateUser создает пользователя вместе с его партнером
func (s *userService) CreateUser(ctx context.Context, caller domain.Caller, user *domain.User) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := caller.RequireManager("create users"); err != nil {
		return nil, err
	}

	user.Login = strings.TrimSpace(user.Login)
	user.Name = strings.TrimSpace(user.Name)
	if user.Login == "" {
		return nil, domain.NewValidationError("user login is required")
	}
	if user.Name == "" {
		return nil, domain.NewValidationError("user name is required")
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Infow("user created", "user_id", user.ID, "login", user.Login, "manager", user.IsManager, "share", user.IsShare)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user %d", id)
	}
	return user, nil
}
