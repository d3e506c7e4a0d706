// File: database/repository/listing/interface.go
package listingRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListingRepository is the persistence surface for marketplace listings.
type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Listing, error)
	GetFeatured(ctx context.Context) ([]models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	SetStatus(ctx context.Context, id, status string) error
	SetRating(ctx context.Context, id string, rating float64, reviewCount int) error
	IncrementInstalls(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type mongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo constructs a new MongoDB ListingRepository.
func NewMongoListingRepo() ListingRepository {
	return &mongoListingRepo{
		coll: database.DB().Collection("listings"),
	}
}
