package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "mercadito/internal/log"
	"mercadito/internal/services"
	"mercadito/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

// Search returns [] for an empty or whitespace-only query; "no query" is
// deliberately not "match everything".
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	q := validate.Query(c.Query("q"))
	products, err := h.Catalog.Search(c.UserContext(), q)
	if err != nil {
		applog.Error(c, "search.error", err, map[string]any{"q": q})
		return serverError(c)
	}
	return c.JSON(products)
}
