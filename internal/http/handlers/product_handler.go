package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts(c.UserContext())
	if err != nil {
		applog.Error(c, "product.list.error", err, nil)
		return serverError(c)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return notFound(c, "product not found")
	}
	p, err := h.Catalog.GetProduct(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "product.get.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	if p == nil {
		return notFound(c, "product not found")
	}
	return c.JSON(p)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return notFound(c, "product not found")
	}
	detail, err := h.Catalog.Detail(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "product.detail.error", err, map[string]any{"id": id})
		return serverError(c)
	}
	if detail == nil {
		return notFound(c, "product not found")
	}
	return c.JSON(detail)
}
