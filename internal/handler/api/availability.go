package api

import (
	"errors"
	"net/http"

	"freebusy/internal/domain/schedule"
	reqdto "freebusy/internal/handler/dto/request"
	resdto "freebusy/internal/handler/dto/response"
	"freebusy/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Query availability
// @Description Find open slots in a date range, optionally narrowed to a time of day
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Calendar ID"
// @Param request body reqdto.AvailabilityQueryRequest true "Availability query"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /calendars/{id}/availability/query [post]
func (h *AvailabilityHandler) Query(c *gin.Context) {
	calendarID, ok := requireCalendarAccess(c)
	if !ok {
		return
	}

	var req reqdto.AvailabilityQueryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	query, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.availabilityUseCase.FindSlots(c.Request.Context(), calendarID, query)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date range start is after end",
			})
		case errors.Is(err, schedule.ErrInvalidCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Count must be a positive integer",
			})
		case errors.Is(err, schedule.ErrUnsupportedIntent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unsupported intent",
			})
		case errors.Is(err, usecase.ErrCalendarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar not found",
			})
		case errors.Is(err, usecase.ErrSnapshotUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Calendar state temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResult(result))
}
