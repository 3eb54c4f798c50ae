package server

import (
	"github.com/bagdasarian/project-team-rules/internal/handler"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes регистрирует маршруты API. X-User-ID проверяется только на
// зарегистрированных маршрутах, остальные запросы получают 404.
func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	auth := h.RequireCaller

	app.Post("/users", auth, h.CreateUser)
	app.Get("/users/:id", auth, h.GetUser)

	app.Post("/stages", auth, h.CreateStage)
	app.Get("/stages", auth, h.ListStages)

	app.Post("/teams", auth, h.CreateTeam)
	app.Get("/teams", auth, h.ListTeams)
	app.Get("/teams/:id", auth, h.GetTeam)
	app.Patch("/teams/:id", auth, h.RenameTeam)
	app.Delete("/teams/:id", auth, h.DeleteTeam)
	app.Put("/teams/:id/members", auth, h.SetMembers)
	app.Post("/teams/:id/members", auth, h.AddMember)
	app.Delete("/teams/:id/members/:user_id", auth, h.RemoveMember)
	app.Post("/teams/:id/archive", auth, h.ArchiveTeam)
	app.Post("/teams/:id/restore", auth, h.RestoreTeam)
	app.Get("/teams/:id/projects", auth, h.TeamProjects)

	app.Post("/projects", auth, h.CreateProject)
	app.Get("/projects", auth, h.ListProjects)
	app.Get("/projects/:id", auth, h.GetProject)
	app.Patch("/projects/:id", auth, h.UpdateProject)
	app.Get("/projects/:id/followers", auth, h.Followers)
	app.Post("/projects/:id/followers", auth, h.SubscribeFollower)

	app.Post("/tasks", auth, h.CreateTask)
	app.Get("/tasks", auth, h.ListTasks)
	app.Get("/tasks/:id", auth, h.GetTask)
	app.Put("/tasks/:id/project", auth, h.ChangeProject)
	app.Put("/tasks/:id/assignees", auth, h.SetAssignees)
	app.Get("/tasks/:id/assignable", auth, h.AssignableUsers)

	app.Get("/stats/tasks", auth, h.GetTaskStatistics)

	app.Use(h.NotFound)
}
