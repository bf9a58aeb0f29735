// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// RegisterUserInput represents the input for staff account registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.UserRole
}

// RegisterUserOutput represents the output of staff account registration.
type RegisterUserOutput struct {
	AccessToken string
	User        *entity.User
}

// RegisterUserUseCase handles staff account registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the staff account registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if len(input.Password) < MinPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
			domainerror.ErrWeakPassword,
		)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyRegistered,
			"email already registered",
			domainerror.ErrEmailAlreadyRegistered,
		)
	}

	passwordHash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = entity.UserRoleStaff
	}

	user := entity.NewUser(input.Name, input.Email, passwordHash, role)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterUserOutput{
		AccessToken: token,
		User:        user,
	}, nil
}
