package api

import (
	"errors"
	"net/http"

	reqdto "freebusy/internal/handler/dto/request"
	resdto "freebusy/internal/handler/dto/response"
	"freebusy/internal/pkg/config"
	"freebusy/internal/pkg/cookie"
	"freebusy/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cfg         config.Config
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cfg:         cfg,
	}
}

// @Summary Log in to a calendar
// @Description Exchange the calendar password for an HTTP-only session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param id path string true "Calendar ID"
// @Param request body reqdto.LoginRequest true "Calendar password"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendars/{id}/auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	calendarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid calendar ID format",
		})
		return
	}

	var req reqdto.LoginRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	token, expiry, err := h.authUseCase.Login(c.Request.Context(), calendarID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCalendarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar not found",
			})
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, token, expiry)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		CalendarID: calendarID.String(),
		ExpiresIn:  int(expiry.Seconds()),
	})
}

// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
