package marketplace

import (
	"context"
	"errors"

	listingRepo "freeflow/database/repository/listing"
	orderRepo "freeflow/database/repository/order"
	reviewRepo "freeflow/database/repository/review"
	"freeflow/models"
)

var (
	ErrListingNotFound    = errors.New("listing not found")
	ErrListingNotActive   = errors.New("listing is not active")
	ErrOrderNotFound      = errors.New("order not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidOrderStatus = errors.New("unknown order status")
)

// MarketplaceService manages listings, orders and reviews for the seller
// marketplace.
type MarketplaceService interface {
	CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	GetFeaturedListings(ctx context.Context) ([]models.Listing, error)
	UpdateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
	PublishListing(ctx context.Context, id string) error
	ArchiveListing(ctx context.Context, id string) error
	DeleteListing(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, vendorID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error

	SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error)
	ModerateReview(ctx context.Context, id, status string) error
	ListReviews(ctx context.Context, listingID string, approvedOnly bool) ([]models.Review, error)

	GetStats(ctx context.Context, vendorID string) (*models.MarketplaceStats, error)
}

// DefaultMarketplaceService implements MarketplaceService.
type DefaultMarketplaceService struct {
	Listings listingRepo.ListingRepository
	Orders   orderRepo.OrderRepository
	Reviews  reviewRepo.ReviewRepository
}
