package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var req TeamRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.CreateTeam(c.UserContext(), callerFrom(c), req.Name, req.MemberIDs)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := h.teamService.ListTeams(c.UserContext(), c.QueryBool("include_inactive", false))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(domainTeamsToHTTP(teams))
}

func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.GetTeam(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) RenameTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req RenameTeamRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.RenameTeam(c.UserContext(), callerFrom(c), id, req.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) SetMembers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req SetMembersRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.SetMembers(c.UserContext(), callerFrom(c), id, req.MemberIDs)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) AddMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	var req AddMemberRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.AddMember(c.UserContext(), callerFrom(c), id, req.UserID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) RemoveMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}
	userID, err := paramID(c, "user_id")
	if err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.RemoveMember(c.UserContext(), callerFrom(c), id, userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) ArchiveTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.ArchiveTeam(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) RestoreTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	team, err := h.teamService.RestoreTeam(c.UserContext(), callerFrom(c), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainTeamToHTTP(team))
}

func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	if err := h.teamService.DeleteTeam(c.UserContext(), callerFrom(c), id); err != nil {
		return h.handleError(c, err)
	}

	return c.SendStatus(http.StatusNoContent)
}

func (h *Handler) TeamProjects(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	projects, err := h.teamService.TeamProjects(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainProjectsToHTTP(projects))
}
