// File: database/repository/servicetype/crud.go
package serviceTypeRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freeflow/models"
)

func (r *mongoServiceTypeRepo) Create(ctx context.Context, st *models.ServiceType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, st)
	return err
}

func (r *mongoServiceTypeRepo) GetByID(ctx context.Context, id string) (*models.ServiceType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.ServiceType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *mongoServiceTypeRepo) GetAll(ctx context.Context) ([]models.ServiceType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	types := []models.ServiceType{}
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *mongoServiceTypeRepo) Update(ctx context.Context, st *models.ServiceType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	st.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": st.ID}, st)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoServiceTypeRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoServiceTypeRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
