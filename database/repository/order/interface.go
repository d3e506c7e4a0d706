// File: database/repository/order/interface.go
package orderRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository is the persistence surface for marketplace orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByListing(ctx context.Context, listingID string) ([]models.Order, error)
	GetByVendor(ctx context.Context, vendorID string) ([]models.Order, error)
	SetStatus(ctx context.Context, id, status string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo constructs a new MongoDB OrderRepository.
func NewMongoOrderRepo() OrderRepository {
	return &mongoOrderRepo{
		coll: database.DB().Collection("orders"),
	}
}
