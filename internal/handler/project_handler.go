package handler

import (
	"net/http"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var req ProjectRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projectService.CreateProject(c.UserContext(), callerFrom(c), &domain.Project{
		Name:    req.Name,
		Privacy: domain.Privacy(req.Privacy),
		TeamID:  req.TeamID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(domainProjectToHTTP(project))
}

func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectService.ListProjects(c.UserContext(), callerFrom(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(domainProjectsToHTTP(projects))
}

func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projectService.GetProject(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainProjectToHTTP(project))
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req UpdateProjectRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	project, err := h.projectService.UpdateProject(c.UserContext(), callerFrom(c), id, httpProjectUpdateToDomain(req))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainProjectToHTTP(project))
}

func (h *Handler) Followers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	followers, err := h.projectService.Followers(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainPartnersToHTTP(followers))
}

func (h *Handler) SubscribeFollower(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req FollowerRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	caller := callerFrom(c)
	if err := h.projectService.SubscribeFollower(c.UserContext(), caller, id, req.PartnerID); err != nil {
		return h.handleError(c, err)
	}

	followers, err := h.projectService.Followers(c.UserContext(), caller, id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainPartnersToHTTP(followers))
}
