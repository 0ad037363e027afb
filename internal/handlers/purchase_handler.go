package handlers

import (
	"errors"
	"log/slog"

	"github.com/eakenya/storefront-api/internal/dto"
	"github.com/eakenya/storefront-api/internal/middleware"
	"github.com/eakenya/storefront-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchases *services.PurchaseService
}

func NewPurchaseHandler(purchases *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases}
}

func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "No token, authorization denied",
		})
	}

	eaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "EA not found",
		})
	}

	owned, err := h.purchases.Purchase(c.UserContext(), userID, eaID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEANotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "EA not found",
			})
		case errors.Is(err, services.ErrAlreadyOwned):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "EA already purchased",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("purchase failed", "error", err, "user_id", userID.String(), "ea_id", eaID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.PurchaseResponse{Msg: "Purchase successful", PurchasedEAs: owned})
}

// ListOwned serves GET /api/user/eas: the user's purchases, fully expanded,
// in the order they were bought.
func (h *PurchaseHandler) ListOwned(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "No token, authorization denied",
		})
	}

	owned, err := h.purchases.Owned(c.UserContext(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		slog.Error("owned list failed", "error", err, "user_id", userID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(owned)
}
