package repository

import (
	"context"
	"errors"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStore is the credential store: identity records plus the ownership set.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	AddPurchase(ctx context.Context, userID, eaID uuid.UUID) error
	HasPurchase(ctx context.Context, userID, eaID uuid.UUID) (bool, error)
	PurchasedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	PurchasedEAs(ctx context.Context, userID uuid.UUID) ([]models.EA, error)
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) AddPurchase(ctx context.Context, userID, eaID uuid.UUID) error {
	purchase := models.Purchase{ID: uuid.New(), UserID: userID, EAID: eaID}
	err := s.db.WithContext(ctx).Create(&purchase).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyOwned
	}
	return err
}

func (s *gormUserStore) HasPurchase(ctx context.Context, userID, eaID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("user_id = ? AND ea_id = ?", userID, eaID).
		Count(&count).Error
	return count > 0, err
}

func (s *gormUserStore) PurchasedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	err := s.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("ea_id", &ids).Error
	return ids, err
}

// PurchasedEAs expands the ownership set into full EA records, preserving
// purchase insertion order.
func (s *gormUserStore) PurchasedEAs(ctx context.Context, userID uuid.UUID) ([]models.EA, error) {
	eas := make([]models.EA, 0)
	err := s.db.WithContext(ctx).Model(&models.EA{}).
		Joins("JOIN purchases ON purchases.ea_id = eas.id").
		Where("purchases.user_id = ?", userID).
		Order("purchases.created_at ASC").
		Find(&eas).Error
	return eas, err
}
