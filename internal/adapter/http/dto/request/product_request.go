package request

import (
	"strings"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase"
)

type ProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Type     string  `json:"type" binding:"required"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	ImageURL string  `json:"image_url"`
}

func (r ProductRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:     r.Name,
		Price:    r.Price,
		Type:     entities.ProductType(strings.ToUpper(strings.TrimSpace(r.Type))),
		Category: r.Category,
		Stock:    r.Stock,
		ImageURL: r.ImageURL,
	}
}
