package equipment

import (
	"errors"
	"net/http"

	"academiasport/internal/api"
	"academiasport/internal/auth"
	"academiasport/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListEquipment godoc
// @Summary      List equipment
// @Tags         equipment
// @Produce      json
// @Param        category query string false "Only this category"
// @Success      200 {array} equipment.Equipment
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/equipment [get]
func (h *Handler) ListEquipment(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		logger.WithError(err).Error("list equipment")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, items)
}

// ReserveEquipment godoc
// @Summary      Reserve equipment
// @Description  Marks the equipment reserved by the member for one hour.
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        id      path string                   true "Equipment ID"
// @Param        request body equipment.ReserveRequest true "Member"
// @Success      200 {object} equipment.Equipment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/equipment/{id}/reserve [put]
func (h *Handler) ReserveEquipment(c *gin.Context) {
	var req ReserveRequest
	if !api.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Reserve(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			api.RespondError(c, http.StatusNotFound, "Equipment not found")
			return
		}
		logger.WithError(err).Error("reserve equipment")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, e)
}

// CreateEquipment godoc
// @Summary      Add equipment
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userId  query string                           true "Administrator user ID"
// @Param        request body  equipment.CreateEquipmentRequest true "Equipment"
// @Success      201 {object} equipment.Equipment
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /api/admin/equipment [post]
func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if !api.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.WithError(err).Error("create equipment")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	adminID, _ := auth.GetAdminID(c)
	logger.Info("equipment added", "equipment_id", e.ID, "category", e.Category, "admin_id", adminID)
	c.JSON(http.StatusCreated, e)
}
