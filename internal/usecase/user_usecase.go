package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
)

// IUserUseCase exposes staff/client account management. Balance is not
// writable here: it moves only through orders and debt payments.

type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Update(ctx context.Context, id, name string, role entities.UserRole) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

func (u *UserUseCase) Update(ctx context.Context, id, name string, role entities.UserRole) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.User{}, ErrInvalidUserName
	}
	switch role {
	case entities.UserRoleAdmin, entities.UserRoleStaff, entities.UserRoleClient:
	default:
		return entities.User{}, ErrInvalidUserRole
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}

	user.Name = name
	user.Role = role
	user.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Save(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}
	return u.repo.Delete(ctx, id)
}
