package handlers

import "github.com/gofiber/fiber/v2"

// GET /whoami — debug echo of the authenticated identity.
func Whoami(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user_id":  c.Locals("user_id"),
		"username": c.Locals("username"),
	})
}
