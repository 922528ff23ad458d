package user

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

// Register godoc
// @Summary      Register member
// @Description  Creates a member account. planId defaults to basic.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.RegisterRequest true "Registration data"
// @Success      200 {object} user.AuthResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailExists):
			api.RespondError(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, ErrInvalidPlan):
			api.RespondError(c, http.StatusBadRequest, "Unknown plan")
		default:
			logger.WithError(err).Error("register user")
			api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: u})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials. Every attempt is written to the login audit log.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body user.LoginRequest true "Credentials"
// @Success      200 {object} user.AuthResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, err := h.service.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			api.RespondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.WithError(err).Error("login")
		api.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: u})
}

// GetUser godoc
// @Summary      Get member
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} user.User
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateUser godoc
// @Summary      Update member profile
// @Description  Merges the given profile fields. Email, password and status flags are not updatable.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path string             true "User ID"
// @Param        request body user.UpdateRequest true "Profile fields"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPlan) {
			api.RespondError(c, http.StatusBadRequest, "Unknown plan")
			return
		}
		h.respondLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrUserNotFound) {
		api.RespondError(c, http.StatusNotFound, "User not found")
		return
	}
	logger.WithError(err).Error("user lookup")
	api.RespondError(c, http.StatusInternalServerError, "Internal server error")
}
