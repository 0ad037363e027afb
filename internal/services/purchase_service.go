package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/eakenya/storefront-api/internal/repository"
	"github.com/google/uuid"
)

var ErrAlreadyOwned = errors.New("ea already purchased")

// PurchaseService records ownership of an EA. Purchase recording is pure
// bookkeeping: no inventory, no payment capture.
type PurchaseService struct {
	users     repository.UserStore
	eas       repository.EAStore
	dbTimeout time.Duration
}

func NewPurchaseService(users repository.UserStore, eas repository.EAStore, dbTimeout time.Duration) *PurchaseService {
	return &PurchaseService{users: users, eas: eas, dbTimeout: dbTimeout}
}

// Purchase resolves both records, checks membership, and appends. The
// membership check makes the call idempotent from the caller's view; the
// (user_id, ea_id) unique index backstops concurrent appends, and a
// constraint hit maps to the same ErrAlreadyOwned with nothing mutated.
func (s *PurchaseService) Purchase(ctx context.Context, userID, eaID uuid.UUID) ([]uuid.UUID, error) {
	userCtx, cancelUser := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelUser()
	if _, err := s.users.FindByID(userCtx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	eaCtx, cancelEA := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelEA()
	ea, err := s.eas.GetByID(eaCtx, eaID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEANotFound
		}
		return nil, fmt.Errorf("ea lookup: %w", err)
	}

	ownsCtx, cancelOwns := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelOwns()
	owned, err := s.users.HasPurchase(ownsCtx, userID, ea.ID)
	if err != nil {
		return nil, fmt.Errorf("ownership check: %w", err)
	}
	if owned {
		return nil, ErrAlreadyOwned
	}

	addCtx, cancelAdd := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelAdd()
	if err := s.users.AddPurchase(addCtx, userID, ea.ID); err != nil {
		if errors.Is(err, repository.ErrAlreadyOwned) {
			return nil, ErrAlreadyOwned
		}
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	idsCtx, cancelIDs := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelIDs()
	ids, err := s.users.PurchasedIDs(idsCtx, userID)
	if err != nil {
		return nil, fmt.Errorf("purchase lookup: %w", err)
	}
	return ids, nil
}

// Owned expands the user's ownership set into full EA records, purchase
// order preserved.
func (s *PurchaseService) Owned(ctx context.Context, userID uuid.UUID) ([]models.EA, error) {
	userCtx, cancelUser := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelUser()
	if _, err := s.users.FindByID(userCtx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	easCtx, cancelEAs := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelEAs()
	return s.users.PurchasedEAs(easCtx, userID)
}
