package entities

import "time"

// ProductType distinguishes physical stock from services (e.g. console
// time bundles) that never run out.

type ProductType string

const (
	ProductTypeDrink   ProductType = "DRINK"
	ProductTypeFood    ProductType = "FOOD"
	ProductTypeService ProductType = "SERVICE"
)

// Product is a sellable item referenced by order lines and inventory logs.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Stock is mutated as a side effect of order creation (decrement) and
// inventory log creation (signed change); the reporting engine only reads it.
type Product struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Price     float64     `json:"price"`
	Type      ProductType `json:"type"`
	Category  string      `json:"category,omitempty"`
	Stock     int         `json:"stock"`
	ImageURL  string      `json:"image_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
