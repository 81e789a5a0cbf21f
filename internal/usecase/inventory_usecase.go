package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidLogType   = errors.New("invalid inventory log type")
	ErrInvalidLogChange = errors.New("invalid inventory change")
)

// InventoryLogInput carries a manual stock movement.
type InventoryLogInput struct {
	ProductID string
	UserID    string
	Change    int
	Cost      *float64
	Type      entities.InventoryLogType
	Note      string
}

// ActivityPage is one page of the filtered activity listing.
type ActivityPage struct {
	Logs       []entities.InventoryLog `json:"logs"`
	TotalCount int                     `json:"total_count"`
	TotalPages int                     `json:"total_pages"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// IInventoryUseCase records stock movements and serves the activity log.

type IInventoryUseCase interface {
	AddLog(ctx context.Context, in InventoryLogInput) (entities.InventoryLog, error)
	ListLogs(ctx context.Context) ([]entities.InventoryLog, error)
	ActivityLogs(ctx context.Context, page, limit int, q interfaces.InventoryLogQuery) (ActivityPage, error)
}

type InventoryUseCase struct {
	repo        interfaces.IInventoryLogRepository
	productRepo interfaces.IProductRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryLogRepository, productRepo interfaces.IProductRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo}
}

// AddLog persists the movement and, when a product is attached, applies the
// signed change to its stock.
func (u *InventoryUseCase) AddLog(ctx context.Context, in InventoryLogInput) (entities.InventoryLog, error) {
	if !entities.ValidInventoryLogType(in.Type) {
		return entities.InventoryLog{}, ErrInvalidLogType
	}
	if in.Change == 0 && in.Type != entities.InventoryLogTypePayment {
		return entities.InventoryLog{}, ErrInvalidLogChange
	}

	productID := strings.TrimSpace(in.ProductID)
	productName := ""
	if productID != "" {
		product, err := u.productRepo.GetByID(ctx, productID)
		if err != nil {
			return entities.InventoryLog{}, err
		}
		if product.ID == "" {
			return entities.InventoryLog{}, ErrProductNotFound
		}
		productName = product.Name
	}

	l := entities.InventoryLog{
		ID:          uuid.NewString(),
		ProductID:   productID,
		ProductName: productName,
		UserID:      strings.TrimSpace(in.UserID),
		Change:      in.Change,
		Cost:        in.Cost,
		Type:        in.Type,
		Note:        in.Note,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.InventoryLog{}, err
	}

	if productID != "" {
		if err := u.productRepo.AdjustStock(ctx, productID, in.Change); err != nil {
			return entities.InventoryLog{}, err
		}
	}

	return created, nil
}

func (u *InventoryUseCase) ListLogs(ctx context.Context) ([]entities.InventoryLog, error) {
	return u.repo.List(ctx)
}

// ActivityLogs returns one page of the filtered listing, newest first.
func (u *InventoryUseCase) ActivityLogs(ctx context.Context, page, limit int, q interfaces.InventoryLogQuery) (ActivityPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	logs, err := u.repo.Search(ctx, q)
	if err != nil {
		return ActivityPage{}, err
	}

	totalCount := len(logs)
	totalPages := (totalCount + limit - 1) / limit

	skip := (page - 1) * limit
	if skip > totalCount {
		skip = totalCount
	}
	end := skip + limit
	if end > totalCount {
		end = totalCount
	}

	return ActivityPage{
		Logs:       logs[skip:end],
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
	}, nil
}
