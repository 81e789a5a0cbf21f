package request

import (
	"strings"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase"
)

type InventoryLogRequest struct {
	ProductID string   `json:"product_id"`
	UserID    string   `json:"user_id"`
	Change    int      `json:"change"`
	Cost      *float64 `json:"cost"`
	Type      string   `json:"type" binding:"required"`
	Note      string   `json:"note"`
}

func (r InventoryLogRequest) ToInput() usecase.InventoryLogInput {
	return usecase.InventoryLogInput{
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Change:    r.Change,
		Cost:      r.Cost,
		Type:      entities.InventoryLogType(strings.ToUpper(strings.TrimSpace(r.Type))),
		Note:      r.Note,
	}
}
