package handlers_test

import (
	"context"
	"sync"

	"github.com/eakenya/storefront-api/internal/models"
	"github.com/eakenya/storefront-api/internal/repository"
	"github.com/google/uuid"
)

// In-memory repository implementations backing the end-to-end handler tests.

func newRandomIDString() string { return uuid.New().String() }

type memEAStore struct {
	mu  sync.Mutex
	eas map[uuid.UUID]models.EA
	ord []uuid.UUID
}

func newMemEAStore() *memEAStore {
	return &memEAStore{eas: make(map[uuid.UUID]models.EA)}
}

func (s *memEAStore) ListActive(ctx context.Context) ([]models.EA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EA, 0)
	for _, id := range s.ord {
		if ea := s.eas[id]; ea.IsActive {
			out = append(out, ea)
		}
	}
	return out, nil
}

func (s *memEAStore) GetByID(ctx context.Context, id uuid.UUID) (*models.EA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ea, ok := s.eas[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &ea, nil
}

func (s *memEAStore) ReplaceAll(ctx context.Context, eas []models.EA) ([]models.EA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eas = make(map[uuid.UUID]models.EA)
	s.ord = nil
	for _, ea := range eas {
		s.eas[ea.ID] = ea
		s.ord = append(s.ord, ea.ID)
	}
	return eas, nil
}

type memUserStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]models.User
	byEmail   map[string]uuid.UUID
	purchases map[uuid.UUID][]uuid.UUID

	eas *memEAStore
}

func newMemUserStore(eas *memEAStore) *memUserStore {
	return &memUserStore{
		users:     make(map[uuid.UUID]models.User),
		byEmail:   make(map[string]uuid.UUID),
		purchases: make(map[uuid.UUID][]uuid.UUID),
		eas:       eas,
	}
}

func (s *memUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byEmail[user.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	s.users[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return nil
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *memUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (s *memUserStore) delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		delete(s.byEmail, user.Email)
		delete(s.users, id)
	}
}

func (s *memUserStore) AddPurchase(ctx context.Context, userID, eaID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, owned := range s.purchases[userID] {
		if owned == eaID {
			return repository.ErrAlreadyOwned
		}
	}
	s.purchases[userID] = append(s.purchases[userID], eaID)
	return nil
}

func (s *memUserStore) HasPurchase(ctx context.Context, userID, eaID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, owned := range s.purchases[userID] {
		if owned == eaID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) PurchasedIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, 0)
	out = append(out, s.purchases[userID]...)
	return out, nil
}

func (s *memUserStore) PurchasedEAs(ctx context.Context, userID uuid.UUID) ([]models.EA, error) {
	s.mu.Lock()
	ids := append([]uuid.UUID(nil), s.purchases[userID]...)
	s.mu.Unlock()

	out := make([]models.EA, 0)
	for _, id := range ids {
		ea, err := s.eas.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *ea)
	}
	return out, nil
}
