package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	methods, err := h.Payments.ListEnabled(c.UserContext())
	if err != nil {
		applog.Error(c, "payment.list.error", err, nil)
		return serverError(c)
	}
	return c.JSON(methods)
}

func (h *PaymentHandler) ForProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return notFound(c, "product not found")
	}
	methods, err := h.Payments.ForProduct(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "payment.product.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	if methods == nil {
		return notFound(c, "product not found")
	}
	return c.JSON(methods)
}
