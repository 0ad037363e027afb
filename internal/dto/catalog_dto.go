package dto

import (
	"github.com/eakenya/storefront-api/internal/models"
	"github.com/google/uuid"
)

type PurchaseResponse struct {
	Msg          string      `json:"msg"`
	PurchasedEAs []uuid.UUID `json:"purchasedEAs"`
}

type SeedResponse struct {
	Msg string      `json:"msg"`
	EAs []models.EA `json:"eas"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
