package models

import "time"

// Listing status enum values.
const (
	ListingStatusActive        = "active"
	ListingStatusDraft         = "draft"
	ListingStatusArchived      = "archived"
	ListingStatusPendingReview = "pending_review"
)

// Pricing model enum values.
const (
	PricingFree         = "free"
	PricingOneTime      = "one_time"
	PricingSubscription = "subscription"
	PricingFreemium     = "freemium"
	PricingUsageBased   = "usage_based"
)

// Listing is a seller's product on the service marketplace.
type Listing struct {
	ID               string   `bson:"id" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Description      string   `bson:"description" json:"description"`
	ShortDescription string   `bson:"short_description,omitempty" json:"short_description,omitempty"`
	Category         string   `bson:"category" json:"category"`
	Subcategory      string   `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	PricingModel     string   `bson:"pricing_model" json:"pricing_model"`
	Price            float64  `bson:"price" json:"price"`
	CompareAtPrice   float64  `bson:"compare_at_price,omitempty" json:"compare_at_price,omitempty"`
	Currency         string   `bson:"currency" json:"currency"`
	Status           string   `bson:"status" json:"status"`
	VendorID         string   `bson:"vendor_id" json:"vendor_id"`
	VendorName       string   `bson:"vendor_name" json:"vendor_name"`
	Images           []string `bson:"images,omitempty" json:"images,omitempty"` // asset public IDs
	Tags             []string `bson:"tags,omitempty" json:"tags,omitempty"`
	Version          string   `bson:"version,omitempty" json:"version,omitempty"`

	// Review roll-up, recomputed when a review is approved.
	Rating      float64 `bson:"rating" json:"rating"`
	ReviewCount int     `bson:"review_count" json:"review_count"`

	Installs   int  `bson:"installs" json:"installs"`
	Downloads  int  `bson:"downloads" json:"downloads"`
	Featured   bool `bson:"featured" json:"featured"`
	Verified   bool `bson:"verified" json:"verified"`
	Bestseller bool `bson:"bestseller" json:"bestseller"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ListingFilter narrows a listing set; same contract as BookingFilter:
// empty / "all" predicates are no-ops and predicates are ANDed.
type ListingFilter struct {
	Query        string `form:"q" json:"q"`
	Category     string `form:"category" json:"category"`
	Status       string `form:"status" json:"status"`
	PricingModel string `form:"pricing_model" json:"pricing_model"`
}

// MarketplaceStats is the seller dashboard summary.
type MarketplaceStats struct {
	TotalListings   int     `json:"totalListings"`
	ActiveListings  int     `json:"activeListings"`
	TotalOrders     int     `json:"totalOrders"`
	CompletedOrders int     `json:"completedOrders"`
	RefundedOrders  int     `json:"refundedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalInstalls   int     `json:"totalInstalls"`
	AvgRating       float64 `json:"avgRating"`
}
