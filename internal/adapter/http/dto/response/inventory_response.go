package response

import (
	"time"

	"respresso/internal/domain/entities"
)

type InventoryLogResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	Change      int       `json:"change"`
	Cost        *float64  `json:"cost,omitempty"`
	Type        string    `json:"type"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromInventoryLog(log entities.InventoryLog) InventoryLogResponse {
	return InventoryLogResponse{
		ID:          log.ID,
		ProductID:   log.ProductID,
		ProductName: log.ProductName,
		UserID:      log.UserID,
		Change:      log.Change,
		Cost:        log.Cost,
		Type:        string(log.Type),
		Note:        log.Note,
		CreatedAt:   log.CreatedAt,
	}
}

func FromInventoryLogs(logs []entities.InventoryLog) []InventoryLogResponse {
	out := make([]InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, FromInventoryLog(l))
	}
	return out
}

type ActivityPageResponse struct {
	Logs       []InventoryLogResponse `json:"logs"`
	TotalCount int                    `json:"total_count"`
	TotalPages int                    `json:"total_pages"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
}
