package handlers

import (
	"errors"
	"net/http"
	"respresso/internal/usecase"
	"respresso/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReportRange = pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid or missing date range", http.StatusBadRequest)
)

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) Stats(c *gin.Context) {
	from, okFrom := parseQueryTime(c.Query("from"))
	to, okTo := parseQueryTime(c.Query("to"))
	if !okFrom || !okTo {
		c.JSON(errInvalidReportRange.HTTPStatus, errInvalidReportRange.ToHTTPError())
		return
	}

	stats, err := h.usecase.ComputeStats(c.Request.Context(), from, to, c.Query("staff_id"))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Analytics always answers 200. On a fetch error the use case returns an
// empty analytics payload and that is what the caller gets.
func (h *ReportHandler) Analytics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	analytics, _ := h.usecase.ComputeTrend(c.Request.Context(), days)
	c.JSON(http.StatusOK, analytics)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.DashboardStats(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
