package docs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"freeflow/models"
)

type fakeDocumentRepo struct {
	docs   map[string]*models.Document
	nextID int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[string]*models.Document{}}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, d *models.Document) error {
	f.nextID++
	if d.ID == "" {
		d.ID = fmt.Sprintf("doc-%03d", f.nextID)
	}
	d.Version = 1
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	clone := *d
	f.docs[d.ID] = &clone
	return nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *d
	return &clone, nil
}

func (f *fakeDocumentRepo) GetBySlug(ctx context.Context, slug string) (*models.Document, error) {
	for _, d := range f.docs {
		if d.Slug == slug {
			clone := *d
			return &clone, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeDocumentRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	out := make([]models.Document, 0, len(f.docs))
	for _, d := range f.docs {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDocumentRepo) Update(ctx context.Context, d *models.Document) error {
	stored, ok := f.docs[d.ID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.Version = stored.Version + 1
	d.UpdatedAt = time.Now()
	clone := *d
	f.docs[d.ID] = &clone
	return nil
}

func (f *fakeDocumentRepo) SetStatus(ctx context.Context, id, status string) error {
	d, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.Status = status
	return nil
}

func (f *fakeDocumentRepo) IncrementViews(ctx context.Context, id string) error {
	d, ok := f.docs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	d.ViewCount++
	return nil
}

func (f *fakeDocumentRepo) CountByType(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, d := range f.docs {
		counts[d.DocType]++
	}
	return counts, nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.docs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.docs, id)
	return nil
}

func newTestService() (*DefaultDocumentationService, *fakeDocumentRepo) {
	repo := newFakeDocumentRepo()
	return &DefaultDocumentationService{Repo: repo}, repo
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"API Reference: Webhooks", "api-reference-webhooks"},
		{"  Already   spaced  ", "already-spaced"},
		{"CamelCase Title", "camelcase-title"},
		{"100% Uptime!", "100-uptime"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCreateDocument(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, err := svc.CreateDocument(ctx, &models.Document{Title: "Getting Started", DocType: models.DocTypeQuickstart})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.Slug != "getting-started" {
		t.Errorf("slug = %q, want getting-started", doc.Slug)
	}
	if doc.Status != models.DocStatusDraft {
		t.Errorf("status = %q, want draft", doc.Status)
	}
	if doc.Version != 1 {
		t.Errorf("version = %d, want 1", doc.Version)
	}

	if _, err := svc.CreateDocument(ctx, &models.Document{}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("empty title err = %v, want ErrEmptyTitle", err)
	}
	if _, err := svc.CreateDocument(ctx, &models.Document{Title: "X", DocType: "novella"}); !errors.Is(err, ErrUnknownDocType) {
		t.Errorf("bad type err = %v, want ErrUnknownDocType", err)
	}
}

func TestGetDocumentBySlug_CountsView(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateDocument(ctx, &models.Document{Title: "Webhooks", DocType: models.DocTypeAPIReference})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	doc, err := svc.GetDocumentBySlug(ctx, "webhooks")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if doc.ViewCount != 1 {
		t.Errorf("returned view count = %d, want 1", doc.ViewCount)
	}
	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.ViewCount != 1 {
		t.Errorf("stored view count = %d, want 1", stored.ViewCount)
	}

	if _, err := svc.GetDocumentBySlug(ctx, "missing"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("missing slug err = %v, want ErrDocumentNotFound", err)
	}
}

func TestUpdateDocument_BumpsVersion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	doc, _ := svc.CreateDocument(ctx, &models.Document{Title: "Concepts", DocType: models.DocTypeConcept})
	doc.Content = "revised"
	updated, err := svc.UpdateDocument(ctx, doc)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("version = %d, want 2", updated.Version)
	}
}

func TestCountByType_IncludesZeroes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateDocument(ctx, &models.Document{Title: "A", DocType: models.DocTypeGuide}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateDocument(ctx, &models.Document{Title: "B", DocType: models.DocTypeGuide}); err != nil {
		t.Fatalf("create: %v", err)
	}

	counts, err := svc.CountByType(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts[models.DocTypeGuide] != 2 {
		t.Errorf("guide count = %d, want 2", counts[models.DocTypeGuide])
	}
	for _, docType := range []string{
		models.DocTypeAPIReference, models.DocTypeTutorial, models.DocTypeConcept,
		models.DocTypeQuickstart, models.DocTypeTroubleshooting,
	} {
		if got, ok := counts[docType]; !ok || got != 0 {
			t.Errorf("count[%s] = %d (present %v), want 0 present", docType, got, ok)
		}
	}
}

func TestFilterDocuments(t *testing.T) {
	docs := []models.Document{
		{ID: "1", Title: "Getting Started", Slug: "getting-started", DocType: models.DocTypeQuickstart, Status: models.DocStatusPublished, Tags: []string{"intro"}},
		{ID: "2", Title: "Webhook Events", Slug: "webhook-events", DocType: models.DocTypeAPIReference, Status: models.DocStatusPublished},
		{ID: "3", Title: "Debugging Webhooks", Slug: "debugging-webhooks", DocType: models.DocTypeTroubleshooting, Status: models.DocStatusDraft},
	}

	tests := []struct {
		name   string
		filter models.DocumentFilter
		want   []string
	}{
		{"identity", models.DocumentFilter{}, []string{"1", "2", "3"}},
		{"query", models.DocumentFilter{Query: "webhook"}, []string{"2", "3"}},
		{"query on tag", models.DocumentFilter{Query: "intro"}, []string{"1"}},
		{"by type", models.DocumentFilter{DocType: models.DocTypeAPIReference}, []string{"2"}},
		{"anded", models.DocumentFilter{Query: "webhook", Status: models.DocStatusDraft}, []string{"3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterDocuments(docs, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d docs, want %d", len(got), len(tc.want))
			}
			for i, d := range got {
				if d.ID != tc.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, d.ID, tc.want[i])
				}
			}
		})
	}
}
