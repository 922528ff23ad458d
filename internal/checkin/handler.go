package checkin

import (
	"errors"
	"net/http"

	"academiasport/internal/api"
	"academiasport/internal/logger"
	"academiasport/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CheckIn godoc
// @Summary      Check in
// @Description  Opens a facility visit for the member.
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Param        request body checkin.CheckinRequest true "Member"
// @Success      200 {object} checkin.Checkin
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/checkins [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckinRequest
	if !api.BindJSON(c, &req) {
		return
	}

	visit, err := h.service.CheckIn(c.Request.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyCheckedIn):
			api.RespondError(c, http.StatusBadRequest, "User is already checked in")
		case errors.Is(err, user.ErrUserNotFound):
			api.RespondError(c, http.StatusNotFound, "User not found")
		default:
			logger.WithError(err).Error("check in")
			api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, visit)
}

// CheckOut godoc
// @Summary      Check out
// @Tags         checkins
// @Produce      json
// @Param        id path string true "Checkin ID"
// @Success      200 {object} checkin.Checkin
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/checkins/{id}/checkout [put]
func (h *Handler) CheckOut(c *gin.Context) {
	visit, err := h.service.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrCheckinNotFound) {
			api.RespondError(c, http.StatusNotFound, "Checkin not found")
			return
		}
		logger.WithError(err).Error("check out")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, visit)
}

// ListUserCheckins godoc
// @Summary      List member visits
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {array} checkin.Checkin
// @Router       /api/users/{id}/checkins [get]
func (h *Handler) ListUserCheckins(c *gin.Context) {
	visits, err := h.service.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.WithError(err).Error("list checkins")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, visits)
}

// ActiveCheckin godoc
// @Summary      Current visit
// @Description  Returns the open visit, or null when the member is not checked in.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} checkin.Checkin
// @Router       /api/users/{id}/checkins/active [get]
func (h *Handler) ActiveCheckin(c *gin.Context) {
	visit, err := h.service.Active(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.WithError(err).Error("active checkin")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, visit)
}
