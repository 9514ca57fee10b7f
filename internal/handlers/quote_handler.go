package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/legitflash/boomquotes-backend/internal/models"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	"github.com/legitflash/boomquotes-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuoteHandler handles quote and favorite HTTP requests
type QuoteHandler struct {
	quoteService services.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// List handles GET /quotes
func (h *QuoteHandler) List(c *gin.Context) {
	category := c.Query("category")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	quotes, err := h.quoteService.List(c, category, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list quotes: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// Random handles GET /quotes/random
func (h *QuoteHandler) Random(c *gin.Context) {
	quote, err := h.quoteService.Random(c, c.Query("category"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No quotes available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get quote: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Seed handles POST /quotes/seed
func (h *QuoteHandler) Seed(c *gin.Context) {
	var quotes []*models.Quote
	if err := c.ShouldBindJSON(&quotes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.quoteService.Seed(c, quotes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to seed quotes: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"seeded": count})
}

// Favorite handles POST /favorites/:quoteId
func (h *QuoteHandler) Favorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quoteID, err := primitive.ObjectIDFromHex(c.Param("quoteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	if err := h.quoteService.Favorite(c, userID, quoteID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorite: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Favorite saved"})
}

// Unfavorite handles DELETE /favorites/:quoteId
func (h *QuoteHandler) Unfavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quoteID, err := primitive.ObjectIDFromHex(c.Param("quoteId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quote ID"})
		return
	}

	if err := h.quoteService.Unfavorite(c, userID, quoteID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

// ListFavorites handles GET /favorites
func (h *QuoteHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListFavorites(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, quotes)
}
