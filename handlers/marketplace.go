package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/services/marketplace"
)

// MarketplaceHandler exposes the marketplace endpoints.
type MarketplaceHandler struct {
	Svc marketplace.MarketplaceService
}

// NewMarketplaceHandler creates a new MarketplaceHandler instance.
func NewMarketplaceHandler(svc marketplace.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{Svc: svc}
}

func marketplaceErrorStatus(err error) int {
	switch {
	case errors.Is(err, marketplace.ErrListingNotFound),
		errors.Is(err, marketplace.ErrOrderNotFound),
		errors.Is(err, marketplace.ErrReviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, marketplace.ErrListingNotActive),
		errors.Is(err, marketplace.ErrInvalidRating),
		errors.Is(err, marketplace.ErrInvalidOrderStatus):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CreateListingHandler creates a draft listing.
func (h *MarketplaceHandler) CreateListingHandler(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Svc.CreateListing(c.Request.Context(), &listing)
	if err != nil {
		getLogger(c).Error("Failed to create listing", zap.Error(err))
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListListingsHandler returns the catalogue narrowed by query parameters.
func (h *MarketplaceHandler) ListListingsHandler(c *gin.Context) {
	var filter models.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	listings, err := h.Svc.ListListings(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to list listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list listings"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetFeaturedListingsHandler returns the featured shelf.
func (h *MarketplaceHandler) GetFeaturedListingsHandler(c *gin.Context) {
	listings, err := h.Svc.GetFeaturedListings(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch featured listings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured listings"})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetListingHandler returns one listing by id.
func (h *MarketplaceHandler) GetListingHandler(c *gin.Context) {
	listing, err := h.Svc.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// UpdateListingHandler saves listing edits.
func (h *MarketplaceHandler) UpdateListingHandler(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	listing.ID = c.Param("id")

	updated, err := h.Svc.UpdateListing(c.Request.Context(), &listing)
	if err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PublishListingHandler makes a listing publicly visible.
func (h *MarketplaceHandler) PublishListingHandler(c *gin.Context) {
	if err := h.Svc.PublishListing(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ListingStatusActive})
}

// ArchiveListingHandler retires a listing.
func (h *MarketplaceHandler) ArchiveListingHandler(c *gin.Context) {
	if err := h.Svc.ArchiveListing(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.ListingStatusArchived})
}

// DeleteListingHandler removes a listing permanently.
func (h *MarketplaceHandler) DeleteListingHandler(c *gin.Context) {
	if err := h.Svc.DeleteListing(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CreateOrderHandler records a purchase.
func (h *MarketplaceHandler) CreateOrderHandler(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.Svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		getLogger(c).Error("Failed to create order", zap.Error(err))
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetOrderHandler returns one order by id.
func (h *MarketplaceHandler) GetOrderHandler(c *gin.Context) {
	order, err := h.Svc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrdersHandler returns orders, optionally scoped to one vendor.
func (h *MarketplaceHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.Svc.ListOrders(c.Request.Context(), c.Query("vendor_id"))
	if err != nil {
		getLogger(c).Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatusHandler moves an order through its lifecycle.
func (h *MarketplaceHandler) UpdateOrderStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// SubmitReviewHandler records buyer feedback for moderation.
func (h *MarketplaceHandler) SubmitReviewHandler(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	review.ListingID = c.Param("id")

	created, err := h.Svc.SubmitReview(c.Request.Context(), &review)
	if err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListReviewsHandler returns a listing's approved reviews; include_pending=1
// widens it to everything for the moderation queue.
func (h *MarketplaceHandler) ListReviewsHandler(c *gin.Context) {
	approvedOnly := c.Query("include_pending") != "1"
	reviews, err := h.Svc.ListReviews(c.Request.Context(), c.Param("id"), approvedOnly)
	if err != nil {
		getLogger(c).Error("Failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ModerateReviewHandler sets a review's moderation status.
func (h *MarketplaceHandler) ModerateReviewHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Svc.ModerateReview(c.Request.Context(), c.Param("reviewId"), req.Status); err != nil {
		c.JSON(marketplaceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// GetMarketplaceStatsHandler returns the seller dashboard summary.
func (h *MarketplaceHandler) GetMarketplaceStatsHandler(c *gin.Context) {
	stats, err := h.Svc.GetStats(c.Request.Context(), c.Query("vendor_id"))
	if err != nil {
		getLogger(c).Error("Failed to compute marketplace stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
