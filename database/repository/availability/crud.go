// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freeflow/models"
)

func (r *mongoAvailabilityRepo) GetByProvider(ctx context.Context, providerID string) (*models.ProviderAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var av models.ProviderAvailability
	if err := r.coll.FindOne(ctx, bson.M{"provider_id": providerID}).Decode(&av); err != nil {
		return nil, err
	}
	return &av, nil
}

func (r *mongoAvailabilityRepo) Upsert(ctx context.Context, av *models.ProviderAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if av.ID == "" {
		av.ID = uuid.New().String()
	}
	now := time.Now()
	if av.CreatedAt.IsZero() {
		av.CreatedAt = now
	}
	av.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"provider_id": av.ProviderID}, av, opts)
	return err
}
