package handler

import (
	"net/http"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var req TaskRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	task, err := h.taskService.CreateTask(c.UserContext(), callerFrom(c), &domain.Task{
		Name:        req.Name,
		ProjectID:   req.ProjectID,
		StageID:     req.StageID,
		AssigneeIDs: req.AssigneeIDs,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(domainTaskToHTTP(task))
}

func (h *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.taskService.ListTasks(c.UserContext(), callerFrom(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(domainTasksToHTTP(tasks))
}

func (h *Handler) GetTask(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	task, err := h.taskService.GetTask(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTaskToHTTP(task))
}

// ChangeProject переносит задачу; project_id обязателен, null снимает проект
func (h *Handler) ChangeProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req ChangeProjectRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}
	if !req.ProjectID.Present {
		return h.handleError(c, domain.NewBadRequestError("project_id is required, use null to unset the project"))
	}

	task, err := h.taskService.ChangeProject(c.UserContext(), callerFrom(c), id, req.ProjectID.Value)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTaskToHTTP(task))
}

func (h *Handler) SetAssignees(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req SetAssigneesRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	task, err := h.taskService.SetAssignees(c.UserContext(), callerFrom(c), id, req.AssigneeIDs)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTaskToHTTP(task))
}

func (h *Handler) AssignableUsers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	members, err := h.taskService.AssignableUsers(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainMembersToHTTP(members))
}
