package dto

import (
	"time"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the register/login payload: a bearer token plus a user
// summary whose ownership set is ids only.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PurchasedEAs []uuid.UUID `json:"purchasedEAs"`
}

// ProfileResponse is the token-gated user fetch: password omitted, purchases
// expanded into full EA records.
type ProfileResponse struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	CreatedAt    time.Time   `json:"createdAt"`
	PurchasedEAs []models.EA `json:"purchasedEAs"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
