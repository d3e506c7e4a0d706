package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freeflow/models"
	documentation "freeflow/services/documentation"
)

// DocumentationHandler exposes the documentation workspace endpoints.
type DocumentationHandler struct {
	Svc documentation.DocumentationService
}

// NewDocumentationHandler creates a new DocumentationHandler instance.
func NewDocumentationHandler(svc documentation.DocumentationService) *DocumentationHandler {
	return &DocumentationHandler{Svc: svc}
}

func documentationErrorStatus(err error) int {
	switch {
	case errors.Is(err, documentation.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, documentation.ErrUnknownDocType),
		errors.Is(err, documentation.ErrEmptyTitle):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CreateDocumentHandler creates a draft page.
func (h *DocumentationHandler) CreateDocumentHandler(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Svc.CreateDocument(c.Request.Context(), &doc)
	if err != nil {
		getLogger(c).Error("Failed to create document", zap.Error(err))
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListDocumentsHandler returns pages narrowed by query parameters.
func (h *DocumentationHandler) ListDocumentsHandler(c *gin.Context) {
	var filter models.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	docs, err := h.Svc.ListDocuments(c.Request.Context(), filter)
	if err != nil {
		getLogger(c).Error("Failed to list documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetDocumentHandler returns one page by id.
func (h *DocumentationHandler) GetDocumentHandler(c *gin.Context) {
	doc, err := h.Svc.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetDocumentBySlugHandler resolves a public documentation URL.
func (h *DocumentationHandler) GetDocumentBySlugHandler(c *gin.Context) {
	doc, err := h.Svc.GetDocumentBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateDocumentHandler saves page edits.
func (h *DocumentationHandler) UpdateDocumentHandler(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	doc.ID = c.Param("id")

	updated, err := h.Svc.UpdateDocument(c.Request.Context(), &doc)
	if err != nil {
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PublishDocumentHandler makes a page publicly visible.
func (h *DocumentationHandler) PublishDocumentHandler(c *gin.Context) {
	if err := h.Svc.PublishDocument(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.DocStatusPublished})
}

// ArchiveDocumentHandler retires a page.
func (h *DocumentationHandler) ArchiveDocumentHandler(c *gin.Context) {
	if err := h.Svc.ArchiveDocument(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.DocStatusArchived})
}

// DeleteDocumentHandler removes a page permanently.
func (h *DocumentationHandler) DeleteDocumentHandler(c *gin.Context) {
	if err := h.Svc.DeleteDocument(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(documentationErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetDocCountsHandler returns per-template page counts.
func (h *DocumentationHandler) GetDocCountsHandler(c *gin.Context) {
	counts, err := h.Svc.CountByType(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to count documents", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count documents"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
