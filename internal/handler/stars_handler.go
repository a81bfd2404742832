package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visyura/notna-archives.art/internal/stars"
)

// StarsHandler exposes the star annotation store over the site API.
type StarsHandler struct {
	store *stars.Store
}

// NewStarsHandler creates a StarsHandler backed by the given store.
func NewStarsHandler(store *stars.Store) *StarsHandler {
	return &StarsHandler{store: store}
}

// LoadStars returns every saved star.
func (h *StarsHandler) LoadStars(c *gin.Context) {
	data, err := h.store.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stars"})
		return
	}
	c.JSON(http.StatusOK, data)
}

// SaveStar upserts one star.
func (h *StarsHandler) SaveStar(c *gin.Context) {
	var star stars.Star
	if err := c.ShouldBindJSON(&star); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid star payload"})
		return
	}

	saved, err := h.store.Upsert(star)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save star"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": saved.ID})
}
