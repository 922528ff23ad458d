package audit

import (
	"net/http"

	"academiasport/internal/api"
	"academiasport/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListLoginLogs godoc
// @Summary      List recent login attempts
// @Description  Admin-only: newest login attempts first.
// @Tags         admin
// @Produce      json
// @Param        userId query string true "Administrator user ID"
// @Success      200 {array} audit.LoginAttempt
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/admin/login-logs [get]
func (h *Handler) ListLoginLogs(c *gin.Context) {
	logs, err := h.service.Recent(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("list login attempts")
		api.RespondError(c, http.StatusInternalServerError, "Failed to fetch login logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
