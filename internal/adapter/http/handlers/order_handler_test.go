package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"respresso/internal/adapter/http/handlers/mocks"
	"respresso/internal/domain/entities"
	"respresso/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("insufficient stock maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "", "staff-1", gomock.Any(), true).
			Return(entities.Order{}, fmt.Errorf("%w: Cola", usecase.ErrInsufficientStock))

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		body := `{"staff_id":"staff-1","is_paid":true,"items":[{"product_id":"p1","quantity":99}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		created := entities.Order{
			ID: "o1", StaffID: "staff-1", Total: 10, IsPaid: true,
			Items: []entities.OrderItem{{ID: "i1", ProductID: "p1", ProductName: "Cola", Quantity: 2, Price: 5}},
		}
		uc.EXPECT().Create(gomock.Any(), "", "staff-1", []usecase.OrderItemInput{{ProductID: "p1", Quantity: 2}}, true).
			Return(created, nil)

		r := gin.New()
		r.POST("/v1/orders", h.Create)

		body := `{"staff_id":"staff-1","is_paid":true,"items":[{"product_id":"p1","quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got["id"] != "o1" || got["total"] != 10.0 {
			t.Fatalf("unexpected payload: %v", got)
		}
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	h := NewOrderHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Order{{ID: "o1"}, {ID: "o2"}}, nil)

	r := gin.New()
	r.GET("/v1/orders", h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
}
