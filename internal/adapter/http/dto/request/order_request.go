package request

import "respresso/internal/usecase"

type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

type CreateOrderRequest struct {
	UserID  string             `json:"user_id"`
	StaffID string             `json:"staff_id"`
	IsPaid  bool               `json:"is_paid"`
	Items   []OrderItemRequest `json:"items" binding:"required,dive"`
}

func (r CreateOrderRequest) ResolveItems() []usecase.OrderItemInput {
	items := make([]usecase.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return items
}
