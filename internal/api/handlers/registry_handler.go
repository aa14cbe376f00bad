package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/registry"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
)

type RegistryHandler struct {
	svc *application.RegistryService
}

func NewRegistryHandler(svc *application.RegistryService) *RegistryHandler {
	return &RegistryHandler{svc: svc}
}

// ListServices godoc
// @Summary List registered service names
// @Tags services
// @Produce json
// @Success 200 {array} registry.Service
// @Failure 500 {object} response.ErrorResponse
// @Router /services [get]
func (h *RegistryHandler) ListServices(c *gin.Context) {
	services, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, services)
}

// AddService godoc
// @Summary Register a service name (Admin only)
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body registry.AddServiceDTO true "Service name"
// @Success 201 {object} registry.Service
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /services [post]
func (h *RegistryHandler) AddService(c *gin.Context) {
	var input registry.AddServiceDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.svc.Add(c, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, svc)
}
