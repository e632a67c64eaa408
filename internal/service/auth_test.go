package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/contact-scout/internal/auth"
	"github.com/octobees/contact-scout/internal/entity"
	"github.com/octobees/contact-scout/internal/repository"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	create      func(ctx context.Context, email, passwordHash, role string) (*entity.User, error)
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockUsersRepository) Create(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash, role)
	}
	return nil, errors.New("create not implemented")
}

func newTestAuthService(repo repository.UsersRepository) *AuthService {
	return NewAuthService(repo, auth.NewJWTManager("test-secret", time.Hour))
}

func TestAuthServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         "user",
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc := newTestAuthService(&mockUsersRepository{
			findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
		})
		token, err := svc.Login(context.Background(), "user@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatalf("expected token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := newTestAuthService(&mockUsersRepository{
			findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
				return user, nil
			},
		})
		if _, err := svc.Login(context.Background(), "user@example.com", "wrong"); err == nil {
			t.Fatalf("expected error for wrong password")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestAuthService(&mockUsersRepository{
			findByEmail: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, repository.ErrUserNotFound
			},
		})
		if _, err := svc.Login(context.Background(), "missing@example.com", "secret"); err == nil {
			t.Fatalf("expected error for unknown user")
		}
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc := newTestAuthService(&mockUsersRepository{})
		if _, err := svc.Login(context.Background(), "", ""); err == nil {
			t.Fatalf("expected error for empty credentials")
		}
	})
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("creates user with default role", func(t *testing.T) {
		var gotRole string
		svc := newTestAuthService(&mockUsersRepository{
			create: func(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
				gotRole = role
				if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret")) != nil {
					t.Fatalf("stored hash does not match password")
				}
				return &entity.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash, Role: role}, nil
			},
		})

		token, err := svc.Register(context.Background(), "new@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatalf("expected token")
		}
		if gotRole != "user" {
			t.Fatalf("expected default role user, got %q", gotRole)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := newTestAuthService(&mockUsersRepository{
			create: func(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
				return nil, repository.ErrEmailDuplicate
			},
		})
		if _, err := svc.Register(context.Background(), "dup@example.com", "secret"); !errors.Is(err, ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})
}
