package request

import (
	"testing"

	"respresso/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestCreateOrderRequest_ResolveItems(t *testing.T) {
	req := CreateOrderRequest{
		StaffID: "staff-1",
		IsPaid:  true,
		Items: []OrderItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1, Price: 3.5},
		},
	}

	items := req.ResolveItems()

	assert.Equal(t, []usecase.OrderItemInput{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1, Price: 3.5},
	}, items)
}

func TestInventoryLogRequest_ToInput(t *testing.T) {
	req := InventoryLogRequest{
		ProductID: "p1",
		Change:    24,
		Type:      " restock ",
		Note:      "weekly delivery",
	}

	in := req.ToInput()

	assert.Equal(t, "p1", in.ProductID)
	assert.Equal(t, 24, in.Change)
	assert.Equal(t, "RESTOCK", string(in.Type))
	assert.Equal(t, "weekly delivery", in.Note)
}
