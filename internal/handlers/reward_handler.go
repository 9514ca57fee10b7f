package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/legitflash/boomquotes-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RewardHandler handles airtime reward HTTP requests
type RewardHandler struct {
	rewardService services.RewardService
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(rewardService services.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// List handles GET /rewards
func (h *RewardHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rewards, err := h.rewardService.List(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rewards: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// Redeem handles POST /rewards/redeem
func (h *RewardHandler) Redeem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reward, err := h.rewardService.Redeem(c, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoPendingReward):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem reward: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reward)
}

// Retry handles POST /payouts/:id/retry
func (h *RewardHandler) Retry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rewardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reward ID"})
		return
	}

	reward, err := h.rewardService.Retry(c, userID, rewardID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrRewardNotRetryable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrPhoneRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retry payout: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, reward)
}
