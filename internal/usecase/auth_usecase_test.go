package usecase

import (
	"context"
	"errors"
	"testing"

	"respresso/internal/domain/entities"
	mock_interfaces "respresso/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCaseForTest(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	return NewAuthUseCase(repo), repo
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	stored := entities.User{ID: "u1", Name: "ana", Password: string(hash), Role: entities.UserRoleStaff}

	t.Run("blank input", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		if _, err := uc.Login(context.Background(), "  ", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByName(gomock.Any(), "ghost").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), "ghost", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByName(gomock.Any(), "ana").Return(stored, nil)

		if _, err := uc.Login(context.Background(), "ana", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success clears password", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByName(gomock.Any(), "ana").Return(stored, nil)

		user, err := uc.Login(context.Background(), "ana", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "u1" || user.Password != "" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		if _, err := uc.Register(context.Background(), "  ", "secret", entities.UserRoleStaff); !errors.Is(err, ErrInvalidUserName) {
			t.Fatalf("expected ErrInvalidUserName, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		if _, err := uc.Register(context.Background(), "ana", "abc", entities.UserRoleStaff); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc, _ := newAuthUseCaseForTest(t)
		if _, err := uc.Register(context.Background(), "ana", "secret", entities.UserRole("BOSS")); !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)
		repo.EXPECT().GetByName(gomock.Any(), "ana").Return(entities.User{ID: "existing"}, nil)

		if _, err := uc.Register(context.Background(), "ana", "secret", entities.UserRoleStaff); !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("success stores a hash, returns no password", func(t *testing.T) {
		uc, repo := newAuthUseCaseForTest(t)

		repo.EXPECT().GetByName(gomock.Any(), "ana").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Password == "secret" || u.Password == "" {
					t.Fatalf("password must be stored hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")); err != nil {
					t.Fatalf("stored hash does not match: %v", err)
				}
				if u.Balance != 0 || u.Role != entities.UserRoleClient {
					t.Fatalf("unexpected new user: %+v", u)
				}
				return u, nil
			})

		user, err := uc.Register(context.Background(), "ana", "secret", entities.UserRoleClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Password != "" {
			t.Fatalf("password must not leak in the result")
		}
	})
}
