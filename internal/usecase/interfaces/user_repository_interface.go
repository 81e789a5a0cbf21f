package interfaces

import (
	"context"

	"respresso/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Balance never goes through Save: it moves atomically via AdjustBalance so
// concurrent orders and debt payments cannot lose updates.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByName(ctx context.Context, name string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	ListByRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
	Save(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
	AdjustBalance(ctx context.Context, id string, delta float64) error
}
