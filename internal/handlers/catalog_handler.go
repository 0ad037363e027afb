package handlers

import (
	"errors"
	"log/slog"

	"github.com/eakenya/storefront-api/internal/dto"
	"github.com/eakenya/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) List(c *fiber.Ctx) error {
	eas, err := h.catalog.ListActive(c.UserContext())
	if err != nil {
		slog.Error("catalog list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(eas)
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	// Non-uuid ids cannot name a row, so they answer not-found.
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "EA not found",
		})
	}

	ea, err := h.catalog.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrEANotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "EA not found",
			})
		}
		slog.Error("catalog get failed", "error", err, "ea_id", id.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(ea)
}

func (h *CatalogHandler) Seed(c *fiber.Ctx) error {
	eas, err := h.catalog.Reseed(c.UserContext())
	if err != nil {
		slog.Error("catalog reseed failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.SeedResponse{Msg: "EAs seeded successfully", EAs: eas})
}
