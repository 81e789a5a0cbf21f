package handlers

import (
	"errors"
	"net/http"
	request "respresso/internal/adapter/http/dto/request"
	response "respresso/internal/adapter/http/dto/response"
	"respresso/internal/domain/entities"
	"respresso/internal/usecase"
	"respresso/internal/usecase/interfaces"
	"respresso/pkg"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)
)

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) AddLog(c *gin.Context) {
	var payload request.InventoryLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	log, err := h.usecase.AddLog(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInventoryLog(log))
}

func (h *InventoryHandler) ListLogs(c *gin.Context) {
	logs, err := h.usecase.ListLogs(c.Request.Context())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInventoryLogs(logs))
}

func (h *InventoryHandler) ActivityLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	q := interfaces.InventoryLogQuery{
		UserID: c.Query("user_id"),
		Search: c.Query("search"),
	}
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q.Type = entities.InventoryLogType(strings.ToUpper(t))
	}
	if from, ok := parseQueryTime(c.Query("from")); ok {
		q.From = &from
	}
	if to, ok := parseQueryTime(c.Query("to")); ok {
		q.To = &to
	}

	activity, err := h.usecase.ActivityLogs(c.Request.Context(), page, limit, q)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ActivityPageResponse{
		Logs:       response.FromInventoryLogs(activity.Logs),
		TotalCount: activity.TotalCount,
		TotalPages: activity.TotalPages,
		Page:       activity.Page,
		Limit:      activity.Limit,
	})
}

// parseQueryTime accepts both RFC 3339 timestamps and plain dates.
func parseQueryTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLogType), errors.Is(err, usecase.ErrInvalidLogChange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
