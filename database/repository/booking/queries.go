// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freeflow/models"
)

func (r *mongoBookingRepo) findAll(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *mongoBookingRepo) GetByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.findAll(ctx, bson.M{"provider_id": providerID})
}

// GetByDateRange returns bookings whose [start_time, end_time) intersects
// [from, to). An empty providerID matches every provider.
func (r *mongoBookingRepo) GetByDateRange(ctx context.Context, providerID string, from, to time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"start_time": bson.M{"$lt": to},
		"end_time":   bson.M{"$gt": from},
	}
	if providerID != "" {
		filter["provider_id"] = providerID
	}
	return r.findAll(ctx, filter)
}

// GetDueForReminder returns confirmed bookings starting before windowEnd that
// have not had their reminder sent yet.
func (r *mongoBookingRepo) GetDueForReminder(ctx context.Context, windowEnd time.Time) ([]models.Booking, error) {
	return r.findAll(ctx, bson.M{
		"status":        models.BookingStatusConfirmed,
		"reminder_sent": false,
		"start_time":    bson.M{"$gt": time.Now(), "$lte": windowEnd},
	})
}
