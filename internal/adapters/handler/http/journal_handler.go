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

type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

type createJournalRequest struct {
	Decision    string    `json:"decision" binding:"required"`
	Reason      string    `json:"reason"`
	Feeling     string    `json:"feeling"`
	MoodValence *float64  `json:"mood_valence"`
	MoodEnergy  *float64  `json:"mood_energy"`
	Timestamp   time.Time `json:"timestamp"`
}

func (h *JournalHandler) RegisterRoutes(router *gin.RouterGroup) {
	journal := router.Group("/journal")
	{
		journal.POST("", h.Create)
		journal.GET("", h.List)
	}
}

func (h *JournalHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), services.CreateJournalInput{
		UserID:      userID,
		Timestamp:   req.Timestamp,
		Decision:    req.Decision,
		Reason:      req.Reason,
		Feeling:     req.Feeling,
		MoodValence: req.MoodValence,
		MoodEnergy:  req.MoodEnergy,
	})
	if err != nil {
		if errors.Is(err, domain.ErrJournalEmptyDecision) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) List(c *gin.Context) {
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
