package service

import (
	"context"

	"github.com/bagdasarian/project-team-rules/internal/domain"
)

// TaskService управляет задачами и ограничивает исполнителей участниками команды проекта.
// Фильтрация исполнителей выполняется только при ChangeProject; CreateTask, SetAssignees
// и SetProjectDirect пишут данные как есть.
type TaskService interface {
	CreateTask(ctx context.Context, caller domain.Caller, task *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, caller domain.Caller, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, caller domain.Caller) ([]*domain.Task, error)
	ChangeProject(ctx context.Context, caller domain.Caller, taskID int64, projectID *int64) (*domain.Task, error)
	OnProjectChanged(ctx context.Context, taskID int64) error
	SetAssignees(ctx context.Context, caller domain.Caller, taskID int64, userIDs []int64) (*domain.Task, error)
	SetProjectDirect(ctx context.Context, caller domain.Caller, taskID int64, projectID *int64) (*domain.Task, error)
	AssignableUsers(ctx context.Context, caller domain.Caller, taskID int64) ([]domain.TeamMember, error)
}
