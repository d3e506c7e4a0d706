// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository persists provider schedules. Time-off entries ride
// the schedule document.
type AvailabilityRepository interface {
	GetByProvider(ctx context.Context, providerID string) (*models.ProviderAvailability, error)
	Upsert(ctx context.Context, av *models.ProviderAvailability) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability"),
	}
}
