package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/store"
	"mercadito/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
}

type priceRequest struct {
	Price float64 `json:"price"`
}

// UpdatePrice sets a product's price and rolls its price history, then
// returns the recomposed detail view.
func (h *AdminHandler) UpdatePrice(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return notFound(c, "product not found")
	}
	var req priceRequest
	if err := c.BodyParser(&req); err != nil || !validate.Price(req.Price) {
		applog.Security(c, "validation.fail", map[string]any{"field": "price"})
		return jsonError(c, fiber.StatusBadRequest, "price must be a positive number")
	}

	detail, err := h.Catalog.UpdatePrice(c.UserContext(), id, req.Price)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound(c, "product not found")
		}
		applog.Error(c, "admin.price.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	applog.Audit(c, "admin.price.updated", map[string]any{"id": id, "price": req.Price})
	return c.JSON(detail)
}
