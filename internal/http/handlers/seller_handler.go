package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type SellerHandler struct {
	Catalog *services.CatalogService
}

func (h *SellerHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "seller"})
		return notFound(c, "seller not found")
	}
	seller, err := h.Catalog.GetSeller(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "seller.get.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	if seller == nil {
		return notFound(c, "seller not found")
	}
	return c.JSON(seller)
}

// Products lists a seller's catalog in the listing view.
func (h *SellerHandler) Products(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "seller"})
		return jsonError(c, fiber.StatusBadRequest, "invalid seller id")
	}
	listings, err := h.Catalog.ListBySeller(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "seller.products.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	return c.JSON(listings)
}
