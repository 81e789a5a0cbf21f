package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"respresso/internal/adapter/http/handlers/mocks"
	"respresso/internal/domain/entities"
	"respresso/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDebtHandler_AddPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtUseCase(ctrl)
		h := NewDebtHandler(uc)

		r := gin.New()
		r.POST("/v1/debts/payments", h.AddPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/debts/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtUseCase(ctrl)
		h := NewDebtHandler(uc)

		uc.EXPECT().AddPayment(gomock.Any(), "ghost", 10.0).Return(entities.DebtPayment{}, usecase.ErrUserNotFound)

		r := gin.New()
		r.POST("/v1/debts/payments", h.AddPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/debts/payments", bytes.NewBufferString(`{"user_id":"ghost","amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDebtUseCase(ctrl)
		h := NewDebtHandler(uc)

		uc.EXPECT().AddPayment(gomock.Any(), "c1", 30.0).Return(entities.DebtPayment{ID: "dp1", UserID: "c1", Amount: 30}, nil)

		r := gin.New()
		r.POST("/v1/debts/payments", h.AddPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/debts/payments", bytes.NewBufferString(`{"user_id":"c1","amount":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestDebtHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDebtUseCase(ctrl)
	h := NewDebtHandler(uc)

	uc.EXPECT().ListPayments(gomock.Any(), "c1").Return([]entities.DebtPayment{{ID: "dp1"}}, nil)

	r := gin.New()
	r.GET("/v1/debts/payments", h.ListPayments)

	req := httptest.NewRequest(http.MethodGet, "/v1/debts/payments?user_id=c1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
