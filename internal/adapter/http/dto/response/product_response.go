package response

import (
	"time"

	"respresso/internal/domain/entities"
)

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProduct(product entities.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Type:      string(product.Type),
		Category:  product.Category,
		Stock:     product.Stock,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
