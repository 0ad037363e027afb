package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/eakenya/storefront-api/internal/repository"
	"github.com/google/uuid"
)

var ErrEANotFound = errors.New("ea not found")

type CatalogService struct {
	eas       repository.EAStore
	dbTimeout time.Duration
}

func NewCatalogService(eas repository.EAStore, dbTimeout time.Duration) *CatalogService {
	return &CatalogService{eas: eas, dbTimeout: dbTimeout}
}

func (s *CatalogService) ListActive(ctx context.Context) ([]models.EA, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()
	return s.eas.ListActive(opCtx)
}

func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*models.EA, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()
	ea, err := s.eas.GetByID(opCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEANotFound
		}
		return nil, fmt.Errorf("ea lookup: %w", err)
	}
	return ea, nil
}

// Reseed wipes the catalog and installs the demo set. Destructive; routes
// keep it behind the admin guard.
func (s *CatalogService) Reseed(ctx context.Context) ([]models.EA, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	seeded, err := s.eas.ReplaceAll(opCtx, SeedEAs())
	if err != nil {
		return nil, fmt.Errorf("failed to reseed catalog: %w", err)
	}

	slog.Info("catalog reseeded", "count", len(seeded))
	return seeded, nil
}
