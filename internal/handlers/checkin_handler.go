package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/legitflash/boomquotes-backend/internal/services"
)

// CheckinHandler handles check-in HTTP requests
type CheckinHandler struct {
	checkinService services.CheckinService
}

// NewCheckinHandler creates a new CheckinHandler
func NewCheckinHandler(checkinService services.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinService: checkinService}
}

// GetToday handles GET /checkins/today
func (h *CheckinHandler) GetToday(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := h.checkinService.GetToday(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get today's check-in: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Click handles POST /checkins/click/:buttonNumber
func (h *CheckinHandler) Click(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	buttonNumber, err := strconv.Atoi(c.Param("buttonNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Button number must be an integer"})
		return
	}

	result, err := h.checkinService.HandleButtonClick(c, userID, buttonNumber)
	if err != nil {
		var cooldown *services.CooldownError
		switch {
		case errors.As(err, &cooldown):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":      cooldown.Error(),
				"retryAfter": cooldown.RemainingSeconds,
			})
		case errors.Is(err, services.ErrInvalidButtonNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process click: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
