package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jaewonk/gpu-admin-go/internal/application"
	"github.com/jaewonk/gpu-admin-go/internal/domain/reservation"
	"github.com/jaewonk/gpu-admin-go/pkg/response"
	"github.com/jaewonk/gpu-admin-go/pkg/utils"
)

type ReservationHandler struct {
	svc *application.ReservationService
}

func NewReservationHandler(svc *application.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// ListReservations godoc
// @Summary List reservations with status and collected approvers
// @Tags reservations
// @Produce json
// @Success 200 {array} reservation.Reservation
// @Failure 500 {object} response.ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations, err := h.svc.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// CreateReservation godoc
// @Summary Create a pending reservation
// @Tags reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reservation.CreateReservationDTO true "Reservation"
// @Success 201 {object} reservation.Reservation
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input reservation.CreateReservationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resv, err := h.svc.Create(c, input)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resv)
}

// ApproveReservation godoc
// @Summary Add one approval to a pending reservation
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Reservation ID"
// @Success 200 {object} reservation.Reservation
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reservations/{id}/approve [put]
func (h *ReservationHandler) ApproveReservation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	resv, err := h.svc.Approve(c, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrAlreadyApproved):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resv)
}

// DeleteReservation godoc
// @Summary Delete a reservation regardless of status
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Reservation ID"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.svc.Delete(c, id); err != nil {
		if errors.Is(err, application.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Reservation deleted"})
}

func isValidationError(err error) bool {
	return errors.Is(err, application.ErrInvalidCount) ||
		errors.Is(err, application.ErrInvalidDate) ||
		errors.Is(err, application.ErrInvalidDateRange) ||
		errors.Is(err, application.ErrStartInPast) ||
		errors.Is(err, application.ErrStartTooFarAhead)
}
