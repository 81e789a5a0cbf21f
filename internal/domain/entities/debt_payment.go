package entities

import "time"

// DebtPayment records a client paying down their outstanding balance.
// Immutable once created.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): gsi1pk (constant) + created_at
type DebtPayment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
