package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserName    = errors.New("invalid user name")
	ErrInvalidUserRole    = errors.New("invalid user role")
	ErrWeakPassword       = errors.New("password too short")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

const bcryptCost = 10

// IAuthUseCase exposes login and account registration.

type IAuthUseCase interface {
	Login(ctx context.Context, name, password string) (entities.User, error)
	Register(ctx context.Context, name, password string, role entities.UserRole) (entities.User, error)
}

type AuthUseCase struct {
	userRepo interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(userRepo interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Login verifies the bcrypt hash for the named account. An unknown name and
// a wrong password are indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, name, password string) (entities.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	user, err := u.userRepo.GetByName(ctx, name)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return entities.User{}, ErrInvalidCredentials
	}

	user.Password = ""
	return user, nil
}

func (u *AuthUseCase) Register(ctx context.Context, name, password string, role entities.UserRole) (entities.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.User{}, ErrInvalidUserName
	}
	if len(password) < 4 {
		return entities.User{}, ErrWeakPassword
	}
	switch role {
	case entities.UserRoleAdmin, entities.UserRoleStaff, entities.UserRoleClient:
	default:
		return entities.User{}, ErrInvalidUserRole
	}

	if existing, err := u.userRepo.GetByName(ctx, name); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:        uuid.NewString(),
		Name:      name,
		Password:  string(hash),
		Role:      role,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	created.Password = ""
	return created, nil
}
