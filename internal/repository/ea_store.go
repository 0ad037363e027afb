package repository

import (
	"context"
	"errors"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EAStore is the product catalog.
type EAStore interface {
	ListActive(ctx context.Context) ([]models.EA, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.EA, error)
	ReplaceAll(ctx context.Context, eas []models.EA) ([]models.EA, error)
}

type gormEAStore struct {
	db *gorm.DB
}

func NewEAStore(db *gorm.DB) EAStore {
	return &gormEAStore{db: db}
}

func (s *gormEAStore) ListActive(ctx context.Context) ([]models.EA, error) {
	eas := make([]models.EA, 0)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&eas).Error
	return eas, err
}

func (s *gormEAStore) GetByID(ctx context.Context, id uuid.UUID) (*models.EA, error) {
	var ea models.EA
	err := s.db.WithContext(ctx).First(&ea, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ea, nil
}

// ReplaceAll clears the catalog and bulk-inserts the given set in one
// transaction, so readers see either the old catalog or the new one, never a
// half-seeded state.
func (s *gormEAStore) ReplaceAll(ctx context.Context, eas []models.EA) ([]models.EA, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.EA{}).Error; err != nil {
			return err
		}
		if len(eas) == 0 {
			return nil
		}
		return tx.Create(&eas).Error
	})
	if err != nil {
		return nil, err
	}
	return eas, nil
}
