package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type PurchaseHandler struct {
	Purchase *services.PurchaseService
}

type purchaseRequest struct {
	Quantity any `json:"quantity"`
}

// Buy maps the tagged purchase outcome onto status codes: business
// failures are 4xx, only I/O failures become 500.
func (h *PurchaseHandler) Buy(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "message": "Product not found",
		})
	}

	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	qty, ok := validate.Quantity(req.Quantity)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "quantity"})
		return jsonError(c, fiber.StatusBadRequest, "quantity must be a non-negative integer")
	}

	result, err := h.Purchase.Purchase(c.UserContext(), id, qty)
	if err != nil {
		applog.Error(c, "purchase.error", err, map[string]any{"id": id, "quantity": qty})
		return serverError(c)
	}
	if !result.Success {
		status := fiber.StatusConflict
		if result.Message == "Product not found" {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(result)
	}
	applog.Audit(c, "purchase.accepted", map[string]any{"id": id, "quantity": qty})
	return c.JSON(result)
}
