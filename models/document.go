package models

import "time"

// Document type enum values, matching the documentation workspace templates.
const (
	DocTypeGuide           = "guide"
	DocTypeAPIReference    = "api-reference"
	DocTypeTutorial        = "tutorial"
	DocTypeConcept         = "concept"
	DocTypeQuickstart      = "quickstart"
	DocTypeTroubleshooting = "troubleshooting"
)

// Document status enum values.
const (
	DocStatusDraft     = "draft"
	DocStatusPublished = "published"
	DocStatusArchived  = "archived"
)

// Document is a page in the documentation workspace.
type Document struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Content   string    `bson:"content" json:"content"`
	DocType   string    `bson:"doc_type" json:"doc_type"`
	Status    string    `bson:"status" json:"status"`
	Tags      []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Version   int       `bson:"version" json:"version"`
	ViewCount int       `bson:"view_count" json:"view_count"`
	AuthorID  string    `bson:"author_id,omitempty" json:"author_id,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DocumentFilter narrows a document list; empty / "all" predicates are no-ops.
type DocumentFilter struct {
	Query   string `form:"q" json:"q"`
	DocType string `form:"type" json:"type"`
	Status  string `form:"status" json:"status"`
}
