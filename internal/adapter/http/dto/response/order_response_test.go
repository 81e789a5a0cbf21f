package response

import (
	"testing"
	"time"

	"respresso/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFromOrder(t *testing.T) {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:      "o1",
		UserID:  "c1",
		StaffID: "staff-1",
		Total:   15,
		IsPaid:  false,
		Items: []entities.OrderItem{
			{ID: "i1", ProductID: "p1", ProductName: "Cola", Quantity: 3, Price: 5},
		},
		CreatedAt: created,
	}

	resp := FromOrder(order)

	assert.Equal(t, "o1", resp.ID)
	assert.Equal(t, "c1", resp.UserID)
	assert.Equal(t, 15.0, resp.Total)
	assert.False(t, resp.IsPaid)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "Cola", resp.Items[0].ProductName)
	assert.Equal(t, created, resp.CreatedAt)
}

func TestFromOrders_Empty(t *testing.T) {
	resp := FromOrders(nil)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}
