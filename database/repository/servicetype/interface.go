// File: database/repository/servicetype/interface.go
package serviceTypeRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceTypeRepository is the persistence surface for the bookable
// service catalogue.
type ServiceTypeRepository interface {
	Create(ctx context.Context, st *models.ServiceType) error
	GetByID(ctx context.Context, id string) (*models.ServiceType, error)
	GetAll(ctx context.Context) ([]models.ServiceType, error)
	Update(ctx context.Context, st *models.ServiceType) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoServiceTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceTypeRepo constructs a new MongoDB ServiceTypeRepository.
func NewMongoServiceTypeRepo() ServiceTypeRepository {
	return &mongoServiceTypeRepo{
		coll: database.DB().Collection("service_types"),
	}
}
