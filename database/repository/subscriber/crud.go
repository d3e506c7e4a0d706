// File: database/repository/subscriber/crud.go
package subscriberRepo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freeflow/models"
)

func (r *mongoSubscriberRepo) Create(ctx context.Context, sub *models.Subscriber) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	sub.Email = strings.ToLower(strings.TrimSpace(sub.Email))
	sub.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, sub)
	return err
}

func (r *mongoSubscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sub models.Subscriber
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.coll.FindOne(ctx, filter).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *mongoSubscriberRepo) GetAll(ctx context.Context) ([]models.Subscriber, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Subscriber{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *mongoSubscriberRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{"status": status})
}

// SetStatus moves a subscriber through pending -> subscribed -> unsubscribed,
// stamping the matching timestamp.
func (r *mongoSubscriberRepo) SetStatus(ctx context.Context, email, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"status": status}
	now := time.Now()
	switch status {
	case models.SubscriberStatusSubscribed:
		set["subscribed_at"] = now
	case models.SubscriberStatusUnsubscribed:
		set["unsubscribed_at"] = now
	}

	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
