package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coherence-app/coherence-engine/internal/adapters/handler/http/middleware"
	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/services"
)

type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler {
	return &MoodHandler{svc: svc}
}

type logMoodRequest struct {
	Label     string    `json:"label" binding:"required"`
	Valence   float64   `json:"valence"`
	Energy    float64   `json:"energy"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *MoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	moods := router.Group("/moods")
	{
		moods.POST("", h.Log)
		moods.GET("", h.List)
	}
}

func (h *MoodHandler) Log(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req logMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.Log(c.Request.Context(), services.LogMoodInput{
		UserID:    userID,
		Timestamp: req.Timestamp,
		Label:     req.Label,
		Valence:   req.Valence,
		Energy:    req.Energy,
		Note:      req.Note,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMoodNoteTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *MoodHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.svc.ListByRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
