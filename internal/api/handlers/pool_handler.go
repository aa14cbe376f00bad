package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/pool"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
)

type PoolHandler struct {
	svc *application.PoolService
}

func NewPoolHandler(svc *application.PoolService) *PoolHandler {
	return &PoolHandler{svc: svc}
}

// ListPools godoc
// @Summary List GPU pool totals
// @Tags pools
// @Produce json
// @Success 200 {array} pool.GPUPool
// @Failure 500 {object} response.ErrorResponse
// @Router /pools [get]
func (h *PoolHandler) ListPools(c *gin.Context) {
	pools, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, pools)
}

// UpsertPool godoc
// @Summary Create or replace the total for a GPU type (Admin only)
// @Tags pools
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body pool.UpsertPoolDTO true "Pool entry"
// @Success 200 {object} pool.GPUPool
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /pools [put]
func (h *PoolHandler) UpsertPool(c *gin.Context) {
	var input pool.UpsertPoolDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.Upsert(c, input)
	if err != nil {
		if errors.Is(err, application.ErrNegativeTotal) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, p)
}
