// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository is the persistence surface for listing reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetByListing(ctx context.Context, listingID string, approvedOnly bool) ([]models.Review, error)
	SetStatus(ctx context.Context, id, status string) error
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{
		coll: database.DB().Collection("reviews"),
	}
}
