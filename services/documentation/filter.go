package docs

import (
	"strings"

	"freeflow/models"
)

// FilterDocuments narrows a page list with ANDed predicates. The query is a
// case-insensitive substring match over title, slug and tags; enum predicates
// treat "" and "all" as wildcards.
func FilterDocuments(docs []models.Document, filter models.DocumentFilter) []models.Document {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if !docMatchesQuery(d, query) {
			continue
		}
		if !matchesEnum(filter.DocType, d.DocType) {
			continue
		}
		if !matchesEnum(filter.Status, d.Status) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func docMatchesQuery(d models.Document, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Title), query) ||
		strings.Contains(strings.ToLower(d.Slug), query) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func matchesEnum(want, got string) bool {
	return want == "" || want == "all" || want == got
}
