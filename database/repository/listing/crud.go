// File: database/repository/listing/crud.go
package listingRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freeflow/models"
)

func (r *mongoListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, listing)
	return err
}

func (r *mongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var listing models.Listing
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *mongoListingRepo) findAll(ctx context.Context, filter bson.M) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := []models.Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *mongoListingRepo) GetAll(ctx context.Context) ([]models.Listing, error) {
	return r.findAll(ctx, bson.M{})
}

func (r *mongoListingRepo) GetByVendor(ctx context.Context, vendorID string) ([]models.Listing, error) {
	return r.findAll(ctx, bson.M{"vendor_id": vendorID})
}

func (r *mongoListingRepo) GetFeatured(ctx context.Context) ([]models.Listing, error) {
	return r.findAll(ctx, bson.M{"featured": true, "status": models.ListingStatusActive})
}

func (r *mongoListingRepo) Update(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	listing.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": listing.ID}, listing)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoListingRepo) SetStatus(ctx context.Context, id, status string) error {
	return r.updateFields(ctx, id, bson.M{"status": status})
}

// SetRating stores the review roll-up computed by the marketplace service.
func (r *mongoListingRepo) SetRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	return r.updateFields(ctx, id, bson.M{"rating": rating, "review_count": reviewCount})
}

func (r *mongoListingRepo) IncrementInstalls(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{"installs": 1},
		"$set": bson.M{"updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoListingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoListingRepo) updateFields(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
