package booking

import (
	"errors"
	"net/http"

	"academiasport/internal/api"
	"academiasport/internal/logger"
	"academiasport/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// BookClass godoc
// @Summary      Book class
// @Description  Takes one seat in the class for the given member.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Class ID"
// @Param        request body booking.BookRequest true "Member"
// @Success      200 {object} booking.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/classes/{id}/book [post]
func (h *Handler) BookClass(c *gin.Context) {
	var req BookRequest
	if !api.BindJSON(c, &req) {
		return
	}

	b, err := h.service.BookClass(c.Request.Context(), req.UserID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrClassNotFound):
			api.RespondError(c, http.StatusNotFound, "Class not found")
		case errors.Is(err, ErrClassFull):
			api.RespondError(c, http.StatusBadRequest, "Class is full")
		case errors.Is(err, ErrAlreadyBooked):
			api.RespondError(c, http.StatusConflict, "You already have a booking for this class")
		default:
			logger.WithError(err).Error("book class")
			api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// CancelBooking godoc
// @Summary      Cancel class booking
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        id      path string              true "Class ID"
// @Param        request body booking.BookRequest true "Member"
// @Success      200 {object} booking.CancelBookingResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/classes/{id}/book [delete]
func (h *Handler) CancelBooking(c *gin.Context) {
	var req BookRequest
	if !api.BindJSON(c, &req) {
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), req.UserID, c.Param("id")); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			api.RespondError(c, http.StatusNotFound, "Booking not found")
			return
		}
		logger.WithError(err).Error("cancel booking")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{Message: "Booking cancelled successfully"})
}

// GetUserBookings godoc
// @Summary      List member bookings
// @Description  Newest first, cancelled bookings included.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {array} booking.Booking
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/users/{id}/bookings [get]
func (h *Handler) GetUserBookings(c *gin.Context) {
	bookings, err := h.service.GetUserBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.WithError(err).Error("list bookings")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
