package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"respresso/internal/domain/entities"
	"respresso/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidClientID      = errors.New("invalid client id")
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// IDebtUseCase records client debt payments and serves their history.

type IDebtUseCase interface {
	AddPayment(ctx context.Context, userID string, amount float64) (entities.DebtPayment, error)
	ListPayments(ctx context.Context, userID string) ([]entities.DebtPayment, error)
}

type DebtUseCase struct {
	repo     interfaces.IDebtPaymentRepository
	userRepo interfaces.IUserRepository
}

var _ IDebtUseCase = (*DebtUseCase)(nil)

func NewDebtUseCase(repo interfaces.IDebtPaymentRepository, userRepo interfaces.IUserRepository) *DebtUseCase {
	return &DebtUseCase{repo: repo, userRepo: userRepo}
}

// AddPayment persists the payment and decrements the client balance by the
// same amount.
func (u *DebtUseCase) AddPayment(ctx context.Context, userID string, amount float64) (entities.DebtPayment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.DebtPayment{}, ErrInvalidClientID
	}
	if amount <= 0 {
		return entities.DebtPayment{}, ErrInvalidPaymentAmount
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entities.DebtPayment{}, err
	}
	if user.ID == "" {
		return entities.DebtPayment{}, ErrUserNotFound
	}

	p := entities.DebtPayment{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.DebtPayment{}, err
	}

	if err := u.userRepo.AdjustBalance(ctx, userID, -amount); err != nil {
		return entities.DebtPayment{}, err
	}

	return created, nil
}

func (u *DebtUseCase) ListPayments(ctx context.Context, userID string) ([]entities.DebtPayment, error) {
	return u.repo.List(ctx, strings.TrimSpace(userID))
}
