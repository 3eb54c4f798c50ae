package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// GetTaskStatistics: GET /stats/tasks?period=this_week&assignee_id=2
func (h *Handler) GetTaskStatistics(c *fiber.Ctx) error {
	var assigneeID *int64
	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return h.handleError(c, domain.NewBadRequestError("assignee_id must be a positive integer"))
		}
		assigneeID = &id
	}

	stats, err := h.statsService.GetTaskStatistics(c.UserContext(), callerFrom(c), c.Query("period"), assigneeID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(domainStatsToHTTP(stats))
}
