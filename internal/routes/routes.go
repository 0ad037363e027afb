package routes

import (
	"github.com/eakenya/storefront-api/internal/config"
	"github.com/eakenya/storefront-api/internal/handlers"
	"github.com/eakenya/storefront-api/internal/middleware"
	"github.com/eakenya/storefront-api/internal/token"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	tokens *token.Manager,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	purchaseHandler *handlers.PurchaseHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	gate := middleware.TokenRequired(tokens)

	api.Get("/health", healthHandler.Check)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/user", gate, authHandler.Profile)

	// Catalog. Seed is destructive and admin-gated; registered before /eas/:id
	// so the literal segment wins.
	api.Post("/eas/seed", middleware.AdminOnly(cfg), catalogHandler.Seed)
	api.Get("/eas", catalogHandler.List)
	api.Get("/eas/:id", catalogHandler.Get)

	// Purchases
	api.Post("/eas/:id/purchase", gate, purchaseHandler.Purchase)
	api.Get("/user/eas", gate, purchaseHandler.ListOwned)
}
