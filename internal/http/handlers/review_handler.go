package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func (h *ReviewHandler) Comments(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	comments, err := h.Reviews.CommentsFor(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "review.comments.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	return c.JSON(comments)
}

func (h *ReviewHandler) Summary(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	summary, err := h.Reviews.Summary(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "review.summary.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	return c.JSON(summary)
}
