package middleware

import (
	"crypto/subtle"

	"github.com/eakenya/storefront-api/internal/config"
	"github.com/eakenya/storefront-api/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// AdminOnly guards destructive maintenance endpoints (the catalog reseed)
// behind a shared admin token. With no ADMIN_TOKEN configured the guarded
// endpoints are disabled outright.
func AdminOnly(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		supplied := c.Get("X-Admin-Token")
		if cfg.AdminToken == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(supplied), []byte(cfg.AdminToken)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
