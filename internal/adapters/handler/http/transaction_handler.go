package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/coherence-app/coherence-engine/internal/adapters/handler/http/middleware"
	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/services"
)

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

type createTransactionRequest struct {
	Kind        string    `json:"kind" binding:"required"`
	Category    string    `json:"category" binding:"required"`
	Amount      string    `json:"amount" binding:"required"`
	Description string    `json:"description"`
	EmotionTag  string    `json:"emotion_tag"`
	Timestamp   time.Time `json:"timestamp"`
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	txns := router.Group("/transactions")
	{
		txns.POST("", h.Create)
		txns.GET("", h.List)
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Amounts travel as strings so the client never round-trips money
	// through a float.
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	txn, err := h.svc.Create(c.Request.Context(), services.CreateTransactionInput{
		UserID:      userID,
		Timestamp:   req.Timestamp,
		Kind:        req.Kind,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
		EmotionTag:  req.EmotionTag,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTxnInvalidKind) || errors.Is(err, domain.ErrTxnEmptyCategory) || errors.Is(err, domain.ErrTxnNegativeAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

func (h *TransactionHandler) List(c *gin.Context) {
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

	txns, err := h.svc.ListByRange(c.Request.Context(), userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, txns)
}
