package models

import "time"

// Order status enum values. The lifecycle is driven by explicit status
// updates from the seller dashboard; refunds happen upstream.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusRefunded   = "refunded"
	OrderStatusCancelled  = "cancelled"
	OrderStatusDisputed   = "disputed"
)

// Order is a buyer's purchase of a marketplace listing.
type Order struct {
	ID          string `bson:"id" json:"id"`
	OrderNumber string `bson:"order_number" json:"order_number"` // e.g. "ORD-M3X9QW"

	ListingID   string `bson:"listing_id" json:"listing_id"`
	ListingName string `bson:"listing_name" json:"listing_name"`
	VendorID    string `bson:"vendor_id" json:"vendor_id"`

	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerEmail string `bson:"customer_email" json:"customer_email"`

	Status     string  `bson:"status" json:"status"`
	Amount     float64 `bson:"amount" json:"amount"`
	Currency   string  `bson:"currency" json:"currency"`
	LicenseKey string  `bson:"license_key,omitempty" json:"license_key,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`
}

// CreateOrderRequest is the payload for purchasing a listing.
type CreateOrderRequest struct {
	ListingID     string `json:"listingId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
}
