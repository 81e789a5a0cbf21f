package entities

import "time"

// InventoryLogType tags the reason for a stock movement.
//
//   - SALE: negative change mirroring an order line
//   - RESTOCK: positive change; Cost (if any) is a business expense
//   - ADJUSTMENT: manual correction
//   - PAYMENT: bookkeeping entry, no stock meaning

type InventoryLogType string

const (
	InventoryLogTypeSale       InventoryLogType = "SALE"
	InventoryLogTypeRestock    InventoryLogType = "RESTOCK"
	InventoryLogTypeAdjustment InventoryLogType = "ADJUSTMENT"
	InventoryLogTypePayment    InventoryLogType = "PAYMENT"
)

// InventoryLog is one signed stock movement.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): gsi1pk (constant) + created_at
//
// ProductName is denormalized for activity search and survives product
// deletion.
type InventoryLog struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"product_id,omitempty"`
	ProductName string           `json:"product_name,omitempty"`
	UserID      string           `json:"user_id,omitempty"`
	Change      int              `json:"change"`
	Cost        *float64         `json:"cost,omitempty"`
	Type        InventoryLogType `json:"type"`
	Note        string           `json:"note,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ValidInventoryLogType reports whether t is one of the known tags.
func ValidInventoryLogType(t InventoryLogType) bool {
	switch t {
	case InventoryLogTypeSale, InventoryLogTypeRestock, InventoryLogTypeAdjustment, InventoryLogTypePayment:
		return true
	}
	return false
}
