package api

import (
	"errors"
	"net/http"

	reqdto "freebusy/internal/handler/dto/request"
	resdto "freebusy/internal/handler/dto/response"
	"freebusy/internal/handler/middleware"
	"freebusy/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
}

func NewCalendarHandler(calendarUseCase usecase.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUseCase,
	}
}

// @Summary Create calendar
// @Description Create a new availability calendar guarded by a password
// @Tags calendars
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCalendarRequest true "Calendar name and password"
// @Success 201 {object} resdto.CalendarResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /calendars [post]
func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	var req reqdto.CreateCalendarRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cal, err := h.calendarUseCase.CreateCalendar(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromCalendar(cal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Get blocked days
// @Description List the calendar's blocked days ordered by date
// @Tags calendars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar ID"
// @Success 200 {object} resdto.BlockedDaysResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendars/{id}/blocked [get]
func (h *CalendarHandler) GetBlockedDays(c *gin.Context) {
	calendarID, ok := requireCalendarAccess(c)
	if !ok {
		return
	}

	entries, err := h.calendarUseCase.GetBlockedDays(c.Request.Context(), calendarID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCalendarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayBlocks(entries))
}

// @Summary Replace blocked days
// @Description Upload the calendar's full blocked state
// @Tags calendars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar ID"
// @Param request body reqdto.ReplaceBlockedDaysRequest true "Blocked days"
// @Success 200 {object} resdto.BlockedDaysResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendars/{id}/blocked [put]
func (h *CalendarHandler) ReplaceBlockedDays(c *gin.Context) {
	calendarID, ok := requireCalendarAccess(c)
	if !ok {
		return
	}

	var req reqdto.ReplaceBlockedDaysRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	entries, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.calendarUseCase.ReplaceBlockedDays(c.Request.Context(), calendarID, entries); err != nil {
		switch {
		case errors.Is(err, usecase.ErrCalendarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayBlocks(entries))
}

// requireCalendarAccess checks that the path calendar is the one the session
// was issued for.
func requireCalendarAccess(c *gin.Context) (uuid.UUID, bool) {
	calendarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid calendar ID format",
		})
		return uuid.Nil, false
	}

	authedID, ok := middleware.GetCalendarID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, false
	}

	if authedID != calendarID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Session does not grant access to this calendar",
		})
		return uuid.Nil, false
	}

	return calendarID, true
}
