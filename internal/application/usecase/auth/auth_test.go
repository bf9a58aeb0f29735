package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/salon-pos/backend/internal/application/adapter"
	"github.com/salon-pos/backend/internal/domain/entity"
	domainerror "github.com/salon-pos/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[email], nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenService struct {
	generateErr error
}

func (s fakeTokenService) GenerateAccessToken(_ context.Context, user *entity.User) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return "token-for-" + user.Email, nil
}

func (s fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func assertAuthCode(t *testing.T, err error, want domainerror.AuthErrorCode) {
	t.Helper()

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected an auth error, got %v", err)
	}
	if authErr.Code != want {
		t.Errorf("expected code %s, got %s", want, authErr.Code)
	}
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new staff account", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		output, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Priya",
			Email:    "priya@example.com",
			Password: "sup3r-secret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.AccessToken == "" {
			t.Error("expected an access token")
		}
		if output.User.Role != entity.UserRoleStaff {
			t.Errorf("expected default role staff, got %s", output.User.Role)
		}
		if output.User.PasswordHash != "hashed:sup3r-secret" {
			t.Errorf("expected hashed password to be stored, got %q", output.User.PasswordHash)
		}
		if repo.users["priya@example.com"] == nil {
			t.Error("expected the user to be persisted")
		}
	})

	t.Run("keeps an explicit owner role", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, fakeTokenService{})

		output, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Priya",
			Email:    "priya@example.com",
			Password: "sup3r-secret",
			Role:     entity.UserRoleOwner,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Role != entity.UserRoleOwner {
			t.Errorf("expected role owner, got %s", output.User.Role)
		}
	})

	t.Run("rejects a short password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Priya",
			Email:    "priya@example.com",
			Password: "short",
		})
		assertAuthCode(t, err, domainerror.ErrCodeWeakPassword)
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.users["priya@example.com"] = entity.NewUser("Priya", "priya@example.com", "hash", entity.UserRoleStaff)
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Name:     "Priya Again",
			Email:    "priya@example.com",
			Password: "sup3r-secret",
		})
		assertAuthCode(t, err, domainerror.ErrCodeEmailAlreadyRegistered)
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	seed := func() *fakeUserRepo {
		repo := newFakeUserRepo()
		repo.users["priya@example.com"] = entity.NewUser(
			"Priya", "priya@example.com", "hashed:sup3r-secret", entity.UserRoleStaff,
		)
		return repo
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		uc := NewLoginUserUseCase(seed(), fakePasswordService{}, fakeTokenService{})

		output, err := uc.Execute(ctx, LoginUserInput{
			Email:    "priya@example.com",
			Password: "sup3r-secret",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken != "token-for-priya@example.com" {
			t.Errorf("unexpected token: %q", output.AccessToken)
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		uc := NewLoginUserUseCase(seed(), fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "priya@example.com",
			Password: "wrong",
		})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		uc := NewLoginUserUseCase(seed(), fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "nobody@example.com",
			Password: "sup3r-secret",
		})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("lookup failures surface as invalid credentials", func(t *testing.T) {
		repo := seed()
		repo.findErr = errors.New("connection reset")
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, fakeTokenService{})

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "priya@example.com",
			Password: "sup3r-secret",
		})
		assertAuthCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})
}
