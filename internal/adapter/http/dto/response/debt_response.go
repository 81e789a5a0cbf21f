package response

import (
	"time"

	"respresso/internal/domain/entities"
)

type DebtPaymentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDebtPayment(payment entities.DebtPayment) DebtPaymentResponse {
	return DebtPaymentResponse{
		ID:        payment.ID,
		UserID:    payment.UserID,
		Amount:    payment.Amount,
		CreatedAt: payment.CreatedAt,
	}
}

func FromDebtPayments(payments []entities.DebtPayment) []DebtPaymentResponse {
	out := make([]DebtPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromDebtPayment(p))
	}
	return out
}
