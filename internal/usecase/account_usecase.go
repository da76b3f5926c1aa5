// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
	// Phone is required for vendors and ignored otherwise.
	Phone string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login.
type AuthOutput struct {
	Account *entity.Account
	Token   string
}

// ProfileOutput is the caller's account with favorites resolved to stores.
type ProfileOutput struct {
	Account   *entity.Account
	Favorites []*entity.Store
}

// FavoriteOutput reports the membership of a store after a toggle.
type FavoriteOutput struct {
	StoreID   uuid.UUID
	Favorited bool
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Profile(ctx context.Context, principal *entity.Principal) (*ProfileOutput, error)
	// ResolvePrincipal verifies a bearer token and reloads its account.
	ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error)
	ToggleFavorite(ctx context.Context, principal *entity.Principal, storeID uuid.UUID) (*FavoriteOutput, error)
}
