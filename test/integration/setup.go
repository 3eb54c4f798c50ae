//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/project-team-rules/internal/db"
	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/bagdasarian/project-team-rules/internal/logger"
	"github.com/bagdasarian/project-team-rules/internal/repository/postgres"
	"github.com/bagdasarian/project-team-rules/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testTimeout = 5 * time.Second

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.PingContext(ctx))

	// Накатываем встроенные миграции goose
	require.NoError(t, db.Migrate(ctx, database, 30*time.Second))

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// fixture - все сервисы поверх одной тестовой базы
type fixture struct {
	db       *sql.DB
	users    *userSeeder
	stages   service.StageService
	teams    service.TeamService
	projects service.ProjectService
	tasks    service.TaskService
	stats    service.StatsService
}

func newFixture(t *testing.T) *fixture {
	database := setupTestDB(t)
	log := logger.Nop()

	tx := postgres.NewTxManager(database)
	teamRepo := postgres.NewTeamRepository(database)
	userRepo := postgres.NewUserRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	stageRepo := postgres.NewStageRepository(database)
	statsRepo := postgres.NewStatsRepository(database)
	policy := service.NewVisibilityPolicy(projectRepo, teamRepo)

	return &fixture{
		db:       database,
		users:    &userSeeder{svc: service.NewUserService(tx, userRepo, log, testTimeout)},
		stages:   service.NewStageService(stageRepo, testTimeout),
		teams:    service.NewTeamService(tx, teamRepo, userRepo, projectRepo, log, testTimeout),
		projects: service.NewProjectService(tx, projectRepo, teamRepo, policy, log, testTimeout),
		tasks:    service.NewTaskService(tx, taskRepo, projectRepo, teamRepo, stageRepo, userRepo, policy, log, testTimeout),
		stats:    service.NewStatsService(tx, statsRepo, log, testTimeout, time.UTC),
	}
}

var root = domain.Caller{IsManager: true}

type userSeeder struct {
	svc service.UserService
}

func (s *userSeeder) create(t *testing.T, login, name string, manager bool) domain.Caller {
	t.Helper()
	user, err := s.svc.CreateUser(context.Background(), root, &domain.User{
		Login:     login,
		Name:      name,
		IsActive:  true,
		IsManager: manager,
	})
	require.NoError(t, err)
	return domain.CallerFromUser(user)
}

func (f *fixture) stage(t *testing.T, name string, sequence int) int64 {
	t.Helper()
	stage, err := f.stages.CreateStage(context.Background(), root, &domain.Stage{Name: name, Sequence: sequence})
	require.NoError(t, err)
	return stage.ID
}
