package entities

import "time"

// OrderItem is one line of an order, priced at time of sale. ProductName is
// denormalized so a later product deletion does not blank out old tickets.
type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order is a till ticket.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): gsi1pk (constant) + created_at, for
//     date-range reporting queries
//
// Total equals the sum of Quantity*Price over Items at creation time; the
// reporting engine trusts it as given. IsPaid routes the total into cash
// revenue, otherwise it is new client debt.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id,omitempty"`
	StaffID   string      `json:"staff_id,omitempty"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	IsPaid    bool        `json:"is_paid"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
