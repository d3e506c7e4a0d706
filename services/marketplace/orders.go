package marketplace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

// CreateOrder records a purchase of an active listing, issues its license
// key and bumps the listing's install counter.
func (svc *DefaultMarketplaceService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	listing, err := svc.GetListing(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingStatusActive {
		return nil, ErrListingNotActive
	}

	order := &models.Order{
		OrderNumber:   newOrderNumber(),
		ListingID:     listing.ID,
		ListingName:   listing.Name,
		VendorID:      listing.VendorID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Status:        models.OrderStatusPending,
		Amount:        listing.Price,
		Currency:      listing.Currency,
		LicenseKey:    newLicenseKey(),
	}
	if listing.PricingModel == models.PricingSubscription {
		expires := time.Now().AddDate(1, 0, 0)
		order.ExpiresAt = &expires
	}
	if listing.PricingModel == models.PricingFree {
		order.Amount = 0
		order.Status = models.OrderStatusCompleted
	}

	if err := svc.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := svc.Listings.IncrementInstalls(ctx, listing.ID); err != nil {
		utils.GetLogger().Warn("Failed to bump install count",
			zap.String("listingId", listing.ID), zap.Error(err))
	}

	utils.GetLogger().Info("Order created",
		zap.String("orderId", order.ID),
		zap.String("orderNumber", order.OrderNumber),
		zap.String("listingId", listing.ID),
	)
	return order, nil
}

// GetOrder returns one order by id.
func (svc *DefaultMarketplaceService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := svc.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return order, nil
}

// ListOrders returns a vendor's orders, or every order when vendorID is
// empty.
func (svc *DefaultMarketplaceService) ListOrders(ctx context.Context, vendorID string) ([]models.Order, error) {
	var (
		orders []models.Order
		err    error
	)
	if vendorID == "" {
		orders, err = svc.Orders.GetAll(ctx)
	} else {
		orders, err = svc.Orders.GetByVendor(ctx, vendorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus moves an order to one of the known statuses.
func (svc *DefaultMarketplaceService) UpdateOrderStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusCompleted,
		models.OrderStatusRefunded, models.OrderStatusCancelled, models.OrderStatusDisputed:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOrderStatus, status)
	}
	if err := svc.Orders.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to set order %s status: %w", id, err)
	}
	return nil
}

func newOrderNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + raw[:8]
}

// newLicenseKey formats a key as four dash-separated groups, e.g.
// "4F2A-9C01-B7E3-D85A".
func newLicenseKey() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("%s-%s-%s-%s", raw[0:4], raw[4:8], raw[8:12], raw[12:16])
}
