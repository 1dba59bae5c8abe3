package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coherence-app/coherence-engine/internal/adapters/ai"
	"github.com/coherence-app/coherence-engine/internal/adapters/handler/http/middleware"
	"github.com/coherence-app/coherence-engine/internal/core/services"
)

// ReviewHandler fronts the text-generation flows. Collaborator
// failures map to gateway statuses with a retryable flag so clients
// can offer a regenerate button instead of caching a broken review.
type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	review := router.Group("/review")
	{
		review.GET("/daily", h.Daily)
		review.GET("/insights", h.Insights)
	}
}

func generatorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ai.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "review generator unavailable",
			"retryable": true,
		})
	case errors.Is(err, ai.ErrBadPayload):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "review generator returned a malformed response",
			"retryable": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *ReviewHandler) Daily(c *gin.Context) {
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

	review, err := h.svc.DailyReview(c.Request.Context(), userID, now)
	if err != nil {
		generatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) Insights(c *gin.Context) {
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

	insights, err := h.svc.DecisionInsights(c.Request.Context(), userID, now)
	if err != nil {
		generatorError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}
