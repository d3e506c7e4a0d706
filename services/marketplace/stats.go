package marketplace

import (
	"context"
	"fmt"

	"freeflow/models"
)

// GetStats assembles the seller dashboard summary for one vendor, or for the
// whole marketplace when vendorID is empty. Refunded orders are excluded from
// revenue.
func (svc *DefaultMarketplaceService) GetStats(ctx context.Context, vendorID string) (*models.MarketplaceStats, error) {
	var (
		listings []models.Listing
		err      error
	)
	if vendorID == "" {
		listings, err = svc.Listings.GetAll(ctx)
	} else {
		listings, err = svc.Listings.GetByVendor(ctx, vendorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load listings for stats: %w", err)
	}

	orders, err := svc.ListOrders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	stats := &models.MarketplaceStats{
		TotalListings: len(listings),
		TotalOrders:   len(orders),
	}

	ratingSum := 0.0
	rated := 0
	for _, l := range listings {
		if l.Status == models.ListingStatusActive {
			stats.ActiveListings++
		}
		stats.TotalInstalls += l.Installs
		if l.ReviewCount > 0 {
			ratingSum += l.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AvgRating = ratingSum / float64(rated)
	}

	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalRevenue += o.Amount
		case models.OrderStatusRefunded:
			stats.RefundedOrders++
		case models.OrderStatusPending, models.OrderStatusProcessing:
			stats.TotalRevenue += o.Amount
		}
	}
	return stats, nil
}
