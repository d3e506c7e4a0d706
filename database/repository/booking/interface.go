// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence surface for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	GetByDateRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Booking, error)
	GetDueForReminder(ctx context.Context, windowEnd time.Time) ([]models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	SetLifecycleFlag(ctx context.Context, id, flag string) error
	Delete(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
