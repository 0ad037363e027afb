package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eakenya/storefront-api/internal/dto"
	"github.com/eakenya/storefront-api/internal/models"
	"github.com/eakenya/storefront-api/internal/password"
	"github.com/eakenya/storefront-api/internal/repository"
	"github.com/eakenya/storefront-api/internal/token"
	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("name, email and password are required")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	users     repository.UserStore
	tokens    *token.Manager
	dbTimeout time.Duration
}

func NewAuthService(users repository.UserStore, tokens *token.Manager, dbTimeout time.Duration) *AuthService {
	return &AuthService{users: users, tokens: tokens, dbTimeout: dbTimeout}
}

// Register creates an account and signs it in. The lookup-then-insert pair is
// not atomic; the unique email index is what actually holds the invariant
// under concurrent registration, and a constraint hit from the insert maps to
// the same conflict as the lookup finding a row.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	opCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	if _, err := s.users.FindByEmail(opCtx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
	}

	createCtx, cancelCreate := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelCreate()
	if err := s.users.Create(createCtx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token: tok,
		User: dto.UserResponse{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			PurchasedEAs: make([]uuid.UUID, 0),
		},
	}, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same failure so callers cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user, err := s.users.FindByEmail(opCtx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	idsCtx, cancelIDs := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelIDs()
	owned, err := s.users.PurchasedIDs(idsCtx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("purchase lookup: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		Token: tok,
		User: dto.UserResponse{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			PurchasedEAs: owned,
		},
	}, nil
}

// Profile re-resolves the token's subject. A valid token whose user record is
// gone fails with ErrUserNotFound rather than being trusted.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.dbTimeout)
	defer cancel()

	user, err := s.users.FindByID(opCtx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	easCtx, cancelEAs := context.WithTimeout(ctx, s.dbTimeout)
	defer cancelEAs()
	owned, err := s.users.PurchasedEAs(easCtx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("purchase lookup: %w", err)
	}

	return &dto.ProfileResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		CreatedAt:    user.CreatedAt,
		PurchasedEAs: owned,
	}, nil
}
