package interfaces

import (
	"context"
	"time"

	"respresso/internal/domain/entities"
)

// IDebtPaymentRepository abstracts DynamoDB persistence for DebtPayment.
//
// Like inventory logs, the optional range filter is the client id, not a
// staff id.

type IDebtPaymentRepository interface {
	Create(ctx context.Context, p entities.DebtPayment) (entities.DebtPayment, error)
	List(ctx context.Context, userID string) ([]entities.DebtPayment, error)
	ListInRange(ctx context.Context, from, to time.Time, userID string) ([]entities.DebtPayment, error)
}
