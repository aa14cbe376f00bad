package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/usage"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
)

type UsageHandler struct {
	svc *application.UsageService
}

func NewUsageHandler(svc *application.UsageService) *UsageHandler {
	return &UsageHandler{svc: svc}
}

// ListUsage godoc
// @Summary List raw usage records
// @Tags usage
// @Produce json
// @Success 200 {array} usage.Record
// @Failure 500 {object} response.ErrorResponse
// @Router /usage [get]
func (h *UsageHandler) ListUsage(c *gin.Context) {
	records, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// CreateUsage godoc
// @Summary Record GPU usage (Admin only)
// @Tags usage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body usage.CreateRecordDTO true "Usage record"
// @Success 201 {object} usage.Record
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /usage [post]
func (h *UsageHandler) CreateUsage(c *gin.Context) {
	var input usage.CreateRecordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	rec, err := h.svc.Create(c, input)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCount) ||
			errors.Is(err, application.ErrInvalidDate) ||
			errors.Is(err, application.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rec)
}
