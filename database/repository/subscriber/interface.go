// File: database/repository/subscriber/interface.go
package subscriberRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriberRepository is the persistence surface for newsletter signups.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	GetAll(ctx context.Context) ([]models.Subscriber, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	SetStatus(ctx context.Context, email, status string) error
}

type mongoSubscriberRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriberRepo constructs a new MongoDB SubscriberRepository.
func NewMongoSubscriberRepo() SubscriberRepository {
	return &mongoSubscriberRepo{
		coll: database.DB().Collection("subscribers"),
	}
}
