package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coherence-app/coherence-engine/internal/adapters/handler/http/middleware"
	"github.com/coherence-app/coherence-engine/internal/core/services"
)

// DashboardHandler serves the derived read models. These endpoints
// never fail on store errors; the service degrades to empty-batch
// defaults so the dashboard always has something to render.
type DashboardHandler struct {
	svc    *services.DashboardService
	habits *services.HabitService
}

func NewDashboardHandler(svc *services.DashboardService, habits *services.HabitService) *DashboardHandler {
	return &DashboardHandler{
		svc:    svc,
		habits: habits,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dash := router.Group("/dashboard")
	{
		dash.GET("/focus", h.Focus)
		dash.GET("/spending", h.Spending)
		dash.GET("/moods", h.Moods)
		dash.GET("/habits", h.Habits)
	}
}

func (h *DashboardHandler) Focus(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now, err := anchorTime(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.svc.Focus(c.Request.Context(), userID, now))
}

func (h *DashboardHandler) Spending(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now, err := anchorTime(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.svc.Spending(c.Request.Context(), userID, now))
}

func (h *DashboardHandler) Moods(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now, err := anchorTime(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": h.svc.MoodHistory(c.Request.Context(), userID, now)})
}

func (h *DashboardHandler) Habits(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	now, err := anchorTime(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.habits.ListWithStatus(c.Request.Context(), userID, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": list})
}
