package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
)

type CapacityHandler struct {
	svc *application.CapacityService
}

func NewCapacityHandler(svc *application.CapacityService) *CapacityHandler {
	return &CapacityHandler{svc: svc}
}

// Status godoc
// @Summary Current availability per GPU type
// @Description Total, used and available units per pool type; available goes negative on over-allocation.
// @Tags capacity
// @Produce json
// @Success 200 {array} view.PoolStatusRow
// @Failure 500 {object} response.ErrorResponse
// @Router /capacity/status [get]
func (h *CapacityHandler) Status(c *gin.Context) {
	rows, err := h.svc.PoolStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Timeline godoc
// @Summary Daily usage timeline
// @Description One row per covered date with used and available units for every pool type.
// @Tags capacity
// @Produce json
// @Success 200 {array} view.TimelineRow
// @Failure 500 {object} response.ErrorResponse
// @Router /capacity/timeline [get]
func (h *CapacityHandler) Timeline(c *gin.Context) {
	rows, err := h.svc.Timeline(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Details godoc
// @Summary Combined usage and approved-reservation records
// @Tags capacity
// @Produce json
// @Success 200 {array} view.UsageDetailRow
// @Failure 500 {object} response.ErrorResponse
// @Router /capacity/details [get]
func (h *CapacityHandler) Details(c *gin.Context) {
	rows, err := h.svc.Details(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
