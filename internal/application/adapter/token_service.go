package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// TokenClaims holds the identity carried by an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   entity.UserRole
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the user.
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken verifies a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
