package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storehub/internal/domain/entity"
)

// Claims defines the custom claims for the bearer tokens.
type Claims struct {
	AccountID uuid.UUID   `json:"-"`
	Role      entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for an account.
	GenerateToken(accountID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the signature and expiry of a token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
