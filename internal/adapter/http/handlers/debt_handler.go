package handlers

import (
	"errors"
	"net/http"
	request "respresso/internal/adapter/http/dto/request"
	response "respresso/internal/adapter/http/dto/response"
	"respresso/internal/usecase"
	"respresso/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDebtPayload = pkg.NewDomainErrorSimple("INVALID_DEBT_INPUT", "Invalid debt payment payload", http.StatusBadRequest)
)

type DebtHandler struct {
	usecase usecase.IDebtUseCase
}

func NewDebtHandler(uc usecase.IDebtUseCase) *DebtHandler {
	return &DebtHandler{usecase: uc}
}

func (h *DebtHandler) AddPayment(c *gin.Context) {
	var payload request.DebtPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDebtPayload.HTTPStatus, errInvalidDebtPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.AddPayment(c.Request.Context(), payload.UserID, payload.Amount)
	if err != nil {
		appErr := mapDebtError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDebtPayment(payment))
}

func (h *DebtHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		appErr := mapDebtError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDebtPayments(payments))
}

func mapDebtError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
