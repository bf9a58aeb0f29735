package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the staff role of an account.
type UserRole string

const (
	UserRoleOwner UserRole = "owner"
	UserRoleStaff UserRole = "staff"
)

// User is a staff account. Expenses record the user that created them.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity with a hashed password.
func NewUser(name, email, passwordHash string, role UserRole) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
