package plan

import (
	"errors"
	"net/http"

	"academiasport/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List membership plans
// @Tags         plans
// @Produce      json
// @Success      200 {array} plan.Plan
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.List(c.Request.Context())
	if err != nil {
		api.RespondError(c, http.StatusInternalServerError, "Failed to fetch plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// @Summary      Get a membership plan
// @Tags         plans
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200 {object} plan.Plan
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			api.RespondError(c, http.StatusNotFound, "Plan not found")
			return
		}
		api.RespondError(c, http.StatusInternalServerError, "Failed to fetch plan")
		return
	}

	c.JSON(http.StatusOK, p)
}
