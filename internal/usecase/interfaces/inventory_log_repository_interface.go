package interfaces

import (
	"context"
	"time"

	"respresso/internal/domain/entities"
)

// InventoryLogQuery filters the activity listing. Zero values mean
// "no filter"; Search matches the note or the denormalized product name.
type InventoryLogQuery struct {
	UserID string
	Type   entities.InventoryLogType
	Search string
	From   *time.Time
	To     *time.Time
}

// IInventoryLogRepository abstracts DynamoDB persistence for InventoryLog.
//
// ListInRange filters by the acting user (not staff) when a filter id is
// given; ListSalesSince feeds the trend's category/top-product tallies.

type IInventoryLogRepository interface {
	Create(ctx context.Context, l entities.InventoryLog) (entities.InventoryLog, error)
	List(ctx context.Context) ([]entities.InventoryLog, error)
	ListInRange(ctx context.Context, from, to time.Time, userID string) ([]entities.InventoryLog, error)
	ListSalesSince(ctx context.Context, from time.Time) ([]entities.InventoryLog, error)
	Search(ctx context.Context, q InventoryLogQuery) ([]entities.InventoryLog, error)
}
