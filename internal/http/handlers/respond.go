package handlers

import "github.com/gofiber/fiber/v2"

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return jsonError(c, fiber.StatusNotFound, msg)
}

// serverError hides internals from the response body; the cause goes to
// the log, not the client.
func serverError(c *fiber.Ctx) error {
	return jsonError(c, fiber.StatusInternalServerError, "something went wrong, please retry")
}
