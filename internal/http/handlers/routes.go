package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the API routes. Search and category routes are declared
// before /products/:id so the literal segments win the match.
func Register(app *fiber.App, d *Deps, adminTokenHash string) {
	api := app.Group("/api")
	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/search", d.SearchHandler.Search)
	api.Get("/products/category/:id", d.CategoryHandler.List)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Get("/products/:id/detail", d.ProductHandler.Detail)
	api.Get("/products/:id/comments", d.ReviewHandler.Comments)
	api.Get("/products/:id/reviews/summary", d.ReviewHandler.Summary)
	api.Get("/products/:id/payment-methods", d.PaymentHandler.ForProduct)
	api.Post("/products/:id/purchase", d.PurchaseHandler.Buy)
	api.Get("/payment-methods", d.PaymentHandler.List)
	api.Get("/sellers/:id", d.SellerHandler.Get)
	api.Get("/sellers/:id/products", d.SellerHandler.Products)

	admin := api.Group("/admin", RequireAdmin(adminTokenHash))
	admin.Put("/products/:id/price", d.AdminHandler.UpdatePrice)
}
