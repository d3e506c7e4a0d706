package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freeflow/services/newsletter"
)

// NewsletterHandler exposes the newsletter endpoints.
type NewsletterHandler struct {
	Svc newsletter.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler instance.
func NewNewsletterHandler(svc newsletter.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{Svc: svc}
}

func newsletterErrorStatus(err error) int {
	switch {
	case errors.Is(err, newsletter.ErrInvalidEmail):
		return http.StatusUnprocessableEntity
	case errors.Is(err, newsletter.ErrTokenNotFound),
		errors.Is(err, newsletter.ErrSubscriberMissing):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// SubscribeHandler registers an email and sends the confirmation link.
func (h *NewsletterHandler) SubscribeHandler(c *gin.Context) {
	var req struct {
		Email  string `json:"email" binding:"required"`
		Source string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	sub, err := h.Svc.Subscribe(c.Request.Context(), req.Email, req.Source)
	if err != nil {
		getLogger(c).Error("Newsletter signup failed", zap.Error(err))
		c.JSON(newsletterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, sub)
}

// ConfirmHandler consumes a confirmation token from the emailed link.
func (h *NewsletterHandler) ConfirmHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	sub, err := h.Svc.Confirm(c.Request.Context(), token)
	if err != nil {
		c.JSON(newsletterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UnsubscribeHandler turns off delivery for an address.
func (h *NewsletterHandler) UnsubscribeHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		c.JSON(newsletterErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unsubscribed"})
}

// ListSubscribersHandler returns the audience list.
func (h *NewsletterHandler) ListSubscribersHandler(c *gin.Context) {
	subs, err := h.Svc.ListSubscribers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list subscribers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscribers"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetNewsletterStatsHandler returns the audience summary.
func (h *NewsletterHandler) GetNewsletterStatsHandler(c *gin.Context) {
	stats, err := h.Svc.GetStats(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to compute newsletter stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
