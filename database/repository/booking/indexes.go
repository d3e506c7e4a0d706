// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "booking_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_booking_number"),
		},
		// Primary calendar query pattern: provider's bookings in a time range.
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("provider_start_idx"),
		},
		// Reminder sweep: confirmed, not yet reminded, starting soon.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "reminder_sent", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("reminder_sweep_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
