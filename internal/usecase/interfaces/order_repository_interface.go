package interfaces

import (
	"context"
	"time"

	"respresso/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// ListInRange is the reporting engine's date-range primitive: inclusive
// creation-time bounds plus an optional staff filter. ListSince feeds the
// trailing trend window.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListInRange(ctx context.Context, from, to time.Time, staffID string) ([]entities.Order, error)
	ListSince(ctx context.Context, from time.Time) ([]entities.Order, error)
}
