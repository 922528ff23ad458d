package schedule

import (
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

// ListClasses godoc
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Param        date query string false "Only classes on this date (YYYY-MM-DD)"
// @Success      200 {array} schedule.Class
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		logger.WithError(err).Error("list classes")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, classes)
}

// CreateClass godoc
// @Summary      Create class
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userId  query string                      true "Administrator user ID"
// @Param        request body  schedule.CreateClassRequest true "Class"
// @Success      201 {object} schedule.Class
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /api/admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if !api.BindJSON(c, &req) {
		return
	}

	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.WithError(err).Error("create class")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	adminID, _ := auth.GetAdminID(c)
	logger.Info("class created", "class_id", class.ID, "date", class.Date, "admin_id", adminID)
	c.JSON(http.StatusCreated, class)
}
