package docs

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

var validDocTypes = map[string]bool{
	models.DocTypeGuide:           true,
	models.DocTypeAPIReference:    true,
	models.DocTypeTutorial:        true,
	models.DocTypeConcept:         true,
	models.DocTypeQuickstart:      true,
	models.DocTypeTroubleshooting: true,
}

// CreateDocument persists a new page in draft state, deriving its slug from
// the title when none is given.
func (svc *DefaultDocumentationService) CreateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if doc.Title == "" {
		return nil, ErrEmptyTitle
	}
	if doc.DocType == "" {
		doc.DocType = models.DocTypeGuide
	}
	if !validDocTypes[doc.DocType] {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocType, doc.DocType)
	}
	if doc.Slug == "" {
		doc.Slug = Slugify(doc.Title)
	}
	doc.Status = models.DocStatusDraft
	doc.ViewCount = 0

	if err := svc.Repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	utils.GetLogger().Info("Document created",
		zap.String("documentId", doc.ID), zap.String("slug", doc.Slug))
	return doc, nil
}

func (svc *DefaultDocumentationService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	doc, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
	}
	return doc, nil
}

// GetDocumentBySlug resolves a public documentation URL and counts the view.
func (svc *DefaultDocumentationService) GetDocumentBySlug(ctx context.Context, slug string) (*models.Document, error) {
	doc, err := svc.Repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to fetch document %q: %w", slug, err)
	}
	if err := svc.Repo.IncrementViews(ctx, doc.ID); err != nil {
		utils.GetLogger().Warn("Failed to bump view count",
			zap.String("documentId", doc.ID), zap.Error(err))
	} else {
		doc.ViewCount++
	}
	return doc, nil
}

// ListDocuments returns pages narrowed by the filter's query and enum
// predicates.
func (svc *DefaultDocumentationService) ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	docs, err := svc.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return FilterDocuments(docs, filter), nil
}

// UpdateDocument saves edits to a page; the repository bumps its version.
func (svc *DefaultDocumentationService) UpdateDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	if doc.Slug == "" && doc.Title != "" {
		doc.Slug = Slugify(doc.Title)
	}
	if err := svc.Repo.Update(ctx, doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to update document %s: %w", doc.ID, err)
	}
	return doc, nil
}

func (svc *DefaultDocumentationService) PublishDocument(ctx context.Context, id string) error {
	return svc.setStatus(ctx, id, models.DocStatusPublished)
}

func (svc *DefaultDocumentationService) ArchiveDocument(ctx context.Context, id string) error {
	return svc.setStatus(ctx, id, models.DocStatusArchived)
}

func (svc *DefaultDocumentationService) setStatus(ctx context.Context, id, status string) error {
	if err := svc.Repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to set document %s status: %w", id, err)
	}
	return nil
}

func (svc *DefaultDocumentationService) DeleteDocument(ctx context.Context, id string) error {
	if err := svc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	return nil
}

// CountByType returns the per-template page counts for the workspace
// overview, with every known type present even when zero.
func (svc *DefaultDocumentationService) CountByType(ctx context.Context) (map[string]int, error) {
	counts, err := svc.Repo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	for docType := range validDocTypes {
		if _, ok := counts[docType]; !ok {
			counts[docType] = 0
		}
	}
	return counts, nil
}
