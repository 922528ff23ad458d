package workout

import (
	"errors"
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

// CreateWorkout godoc
// @Summary      Log workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Param        request body workout.CreateWorkoutRequest true "Workout"
// @Success      200 {object} workout.Workout
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/workouts [post]
func (h *Handler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if !api.BindJSON(c, &req) {
		return
	}

	w, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.WithError(err).Error("create workout")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, w)
}

// GetWorkout godoc
// @Summary      Get workout
// @Tags         workouts
// @Produce      json
// @Param        id path string true "Workout ID"
// @Success      200 {object} workout.Workout
// @Failure      404 {object} api.ErrorResponse
// @Router       /api/workouts/{id} [get]
func (h *Handler) GetWorkout(c *gin.Context) {
	w, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			api.RespondError(c, http.StatusNotFound, "Workout not found")
			return
		}
		logger.WithError(err).Error("get workout")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, w)
}

// ListUserWorkouts godoc
// @Summary      List member workouts
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {array} workout.Workout
// @Router       /api/users/{id}/workouts [get]
func (h *Handler) ListUserWorkouts(c *gin.Context) {
	workouts, err := h.service.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.WithError(err).Error("list workouts")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// WorkoutSummary godoc
// @Summary      Member workout totals
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} workout.Summary
// @Router       /api/users/{id}/workouts/summary [get]
func (h *Handler) WorkoutSummary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.WithError(err).Error("workout summary")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, sum)
}
