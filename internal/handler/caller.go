package handler

import (
	"strconv"
	"strings"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/gofiber/fiber/v2"
)

const (
	// HeaderUserID - заголовок с идентификатором вызывающего пользователя
	HeaderUserID = "X-User-ID"

	callerKey = "caller"
)

// RequireCaller определяет вызывающего по X-User-ID и кладет его в Locals
func (h *Handler) RequireCaller(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Get(HeaderUserID))
	if raw == "" {
		return h.handleError(c, domain.ErrUnauthenticated)
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return h.handleError(c, domain.NewBadRequestError("X-User-ID must be a positive integer"))
	}

	caller, err := h.callerService.ResolveCaller(c.UserContext(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	c.Locals(callerKey, caller)
	return c.Next()
}

func callerFrom(c *fiber.Ctx) domain.Caller {
	caller, _ := c.Locals(callerKey).(domain.Caller)
	return caller
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewBadRequestError(name + " must be a positive integer")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.NewBadRequestError("invalid body")
	}
	return nil
}
