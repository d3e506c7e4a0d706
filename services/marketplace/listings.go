package marketplace

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

// CreateListing persists a new listing in draft state.
func (svc *DefaultMarketplaceService) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	listing.Status = models.ListingStatusDraft
	listing.Rating = 0
	listing.ReviewCount = 0
	if listing.Currency == "" {
		listing.Currency = "USD"
	}
	if err := svc.Listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	utils.GetLogger().Info("Listing created",
		zap.String("listingId", listing.ID), zap.String("vendorId", listing.VendorID))
	return listing, nil
}

func (svc *DefaultMarketplaceService) GetListing(ctx context.Context, id string) (*models.Listing, error) {
	listing, err := svc.Listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	return listing, nil
}

// ListListings returns the catalogue narrowed by the filter's query and enum
// predicates.
func (svc *DefaultMarketplaceService) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	listings, err := svc.Listings.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return FilterListings(listings, filter), nil
}

func (svc *DefaultMarketplaceService) GetFeaturedListings(ctx context.Context) ([]models.Listing, error) {
	listings, err := svc.Listings.GetFeatured(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured listings: %w", err)
	}
	return listings, nil
}

func (svc *DefaultMarketplaceService) UpdateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	if err := svc.Listings.Update(ctx, listing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to update listing %s: %w", listing.ID, err)
	}
	return listing, nil
}

// PublishListing makes a listing visible in the catalogue.
func (svc *DefaultMarketplaceService) PublishListing(ctx context.Context, id string) error {
	return svc.setListingStatus(ctx, id, models.ListingStatusActive)
}

// ArchiveListing retires a listing without deleting its order history.
func (svc *DefaultMarketplaceService) ArchiveListing(ctx context.Context, id string) error {
	return svc.setListingStatus(ctx, id, models.ListingStatusArchived)
}

func (svc *DefaultMarketplaceService) setListingStatus(ctx context.Context, id, status string) error {
	if err := svc.Listings.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to set listing %s status: %w", id, err)
	}
	utils.GetLogger().Info("Listing status changed",
		zap.String("listingId", id), zap.String("status", status))
	return nil
}

func (svc *DefaultMarketplaceService) DeleteListing(ctx context.Context, id string) error {
	if err := svc.Listings.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrListingNotFound
		}
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	return nil
}
