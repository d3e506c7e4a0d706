package docs

import (
	"context"
	"errors"

	documentRepo "freeflow/database/repository/document"
	"freeflow/models"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrUnknownDocType   = errors.New("unknown document type")
	ErrEmptyTitle       = errors.New("document title is required")
)

// DocumentationService manages the documentation workspace.
type DocumentationService interface {
	CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	GetDocumentBySlug(ctx context.Context, slug string) (*models.Document, error)
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	UpdateDocument(ctx context.Context, doc *models.Document) (*models.Document, error)
	PublishDocument(ctx context.Context, id string) error
	ArchiveDocument(ctx context.Context, id string) error
	DeleteDocument(ctx context.Context, id string) error
	CountByType(ctx context.Context) (map[string]int, error)
}

// DefaultDocumentationService implements DocumentationService.
type DefaultDocumentationService struct {
	Repo documentRepo.DocumentRepository
}
