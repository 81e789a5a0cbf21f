package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidOrderItem    = errors.New("invalid order item")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrderClientRequired = errors.New("unpaid order requires a client")
)

// OrderItemInput is one requested order line. Price <= 0 means "charge the
// current catalog price".
type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

// IOrderUseCase creates till tickets and applies their ledger side effects:
// stock decrements, SALE inventory logs and, for unpaid orders, the client
// balance increment.

type IOrderUseCase interface {
	Create(ctx context.Context, userID, staffID string, items []OrderItemInput, isPaid bool) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	orderRepo   interfaces.IOrderRepository
	productRepo interfaces.IProductRepository
	userRepo    interfaces.IUserRepository
	invRepo     interfaces.IInventoryLogRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orderRepo interfaces.IOrderRepository,
	productRepo interfaces.IProductRepository,
	userRepo interfaces.IUserRepository,
	invRepo interfaces.IInventoryLogRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		invRepo:     invRepo,
	}
}

func (u *OrderUseCase) Create(ctx context.Context, userID, staffID string, items []OrderItemInput, isPaid bool) (entities.Order, error) {
	if len(items) == 0 {
		return entities.Order{}, ErrEmptyOrder
	}
	if !isPaid && userID == "" {
		return entities.Order{}, ErrOrderClientRequired
	}

	orderID := uuid.NewString()
	now := time.Now().UTC()

	lines := make([]entities.OrderItem, 0, len(items))
	var total float64
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return entities.Order{}, ErrInvalidOrderItem
		}
		product, err := u.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return entities.Order{}, err
		}
		if product.ID == "" {
			return entities.Order{}, ErrProductNotFound
		}
		if product.Type != entities.ProductTypeService && product.Stock < item.Quantity {
			return entities.Order{}, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		price := item.Price
		if price <= 0 {
			price = product.Price
		}
		total += float64(item.Quantity) * price
		lines = append(lines, entities.OrderItem{
			ID:          uuid.NewString(),
			OrderID:     orderID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       price,
		})
	}

	order := entities.Order{
		ID:        orderID,
		UserID:    userID,
		StaffID:   staffID,
		Items:     lines,
		Total:     total,
		IsPaid:    isPaid,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.orderRepo.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}

	// Unpaid total becomes new client debt.
	if !isPaid && userID != "" {
		if err := u.userRepo.AdjustBalance(ctx, userID, total); err != nil {
			log.Printf("[order][usecase] balance increment failed order_id=%s user_id=%s err=%v", orderID, userID, err)
			return entities.Order{}, err
		}
	}

	for _, line := range lines {
		if err := u.productRepo.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
			log.Printf("[order][usecase] stock decrement failed order_id=%s product_id=%s err=%v", orderID, line.ProductID, err)
			return entities.Order{}, err
		}
		saleLog := entities.InventoryLog{
			ID:          uuid.NewString(),
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UserID:      staffID,
			Change:      -line.Quantity,
			Type:        entities.InventoryLogTypeSale,
			Note:        fmt.Sprintf("Order #%s", orderID),
			CreatedAt:   now,
		}
		if _, err := u.invRepo.Create(ctx, saleLog); err != nil {
			log.Printf("[order][usecase] sale log failed order_id=%s product_id=%s err=%v", orderID, line.ProductID, err)
			return entities.Order{}, err
		}
	}

	return created, nil
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.orderRepo.List(ctx)
}
