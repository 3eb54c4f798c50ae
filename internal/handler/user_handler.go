package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	user, err := h.userService.CreateUser(c.UserContext(), callerFrom(c), httpUserToDomain(req))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(domainUserToHTTP(user))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.handleError(c, err)
	}

	user, err := h.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainUserToHTTP(user))
}
