package service

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, caller domain.Caller, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}
