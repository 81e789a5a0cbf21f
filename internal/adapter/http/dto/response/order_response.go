package response

import (
	"time"

	"respresso/internal/domain/entities"
)

type OrderItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id,omitempty"`
	StaffID   string              `json:"staff_id,omitempty"`
	Total     float64             `json:"total"`
	IsPaid    bool                `json:"is_paid"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

func FromOrder(order entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		StaffID:   order.StaffID,
		Total:     order.Total,
		IsPaid:    order.IsPaid,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
