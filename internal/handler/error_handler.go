package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/project-team-rules/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) handleError(c *fiber.Ctx, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return c.Status(getStatusCode(domainErr.Code)).JSON(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
	}

	h.log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

// NotFound отвечает на запросы к незарегистрированным маршрутам
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return h.handleError(c, domain.NewNotFoundError("route "+c.Method()+" "+c.Path()))
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeValidation, domain.CodeBadRequest:
		return http.StatusBadRequest
	case domain.CodeUnauthenticated:
		return http.StatusUnauthorized
	case domain.CodeAccessDenied:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeTeamInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
