package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// List returns the listing view (mainImage + currentPrice) for every
// product in the category. An unknown category is simply an empty list.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return jsonError(c, fiber.StatusBadRequest, "invalid category id")
	}
	listings, err := h.Catalog.ListByCategory(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "category.list.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	return c.JSON(listings)
}
