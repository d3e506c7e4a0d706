package marketplace

import (
	"strings"

	"freeflow/models"
)

// FilterListings narrows a listing set with ANDed predicates. The query is a
// case-insensitive substring match over name, vendor name and tags; enum
// predicates treat "" and "all" as wildcards.
func FilterListings(listings []models.Listing, filter models.ListingFilter) []models.Listing {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if !listingMatchesQuery(l, query) {
			continue
		}
		if !matchesEnum(filter.Category, l.Category) {
			continue
		}
		if !matchesEnum(filter.Status, l.Status) {
			continue
		}
		if !matchesEnum(filter.PricingModel, l.PricingModel) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func listingMatchesQuery(l models.Listing, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.VendorName), query) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func matchesEnum(want, got string) bool {
	return want == "" || want == "all" || want == got
}
