package handler

import (
	"net/http"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateStage(c *fiber.Ctx) error {
	var req StageRequest
	if err := parseBody(c, &req); err != nil {
		return h.handleError(c, err)
	}

	stage, err := h.stageService.CreateStage(c.UserContext(), callerFrom(c), &domain.Stage{
		Name:     req.Name,
		Sequence: req.Sequence,
		Fold:     req.Fold,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(domainStageToHTTP(stage))
}

func (h *Handler) ListStages(c *fiber.Ctx) error {
	stages, err := h.stageService.ListStages(c.UserContext())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(domainStagesToHTTP(stages))
}
