package interfaces

import (
	"context"

	"respresso/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.
//
// Stock moves only via AdjustStock (signed delta) so order creation and
// inventory logging remain atomic per product.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Save(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) error
	Count(ctx context.Context) (int, error)
	ListLowStock(ctx context.Context, threshold, limit int) ([]entities.Product, error)
}
