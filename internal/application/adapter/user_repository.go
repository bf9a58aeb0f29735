package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/domain/entity"
)

// UserRepository defines the interface for staff account persistence.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id. Returns (nil, nil) when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
