// File: database/repository/document/interface.go
package documentRepo

import (
	"context"

	"freeflow/database"
	"freeflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentRepository is the persistence surface for documentation pages.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id string) (*models.Document, error)
	GetBySlug(ctx context.Context, slug string) (*models.Document, error)
	GetAll(ctx context.Context) ([]models.Document, error)
	Update(ctx context.Context, doc *models.Document) error
	SetStatus(ctx context.Context, id, status string) error
	IncrementViews(ctx context.Context, id string) error
	CountByType(ctx context.Context) (map[string]int, error)
	Delete(ctx context.Context, id string) error
}

type mongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo constructs a new MongoDB DocumentRepository.
func NewMongoDocumentRepo() DocumentRepository {
	return &mongoDocumentRepo{
		coll: database.DB().Collection("documents"),
	}
}
