package scheduling

import (
	"strings"

	"freeflow/models"
)

// FilterBookings returns the bookings matching every populated predicate in
// filter. The text query is a case-insensitive substring match over title,
// customer name and booking number; enum predicates treat "" and "all" as
// wildcards. The input slice is never mutated.
func FilterBookings(bookings []models.Booking, filter models.BookingFilter) []models.Booking {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !matchesQuery(b, query) {
			continue
		}
		if !matchesEnum(filter.BookingType, b.BookingType) {
			continue
		}
		if !matchesEnum(filter.Status, b.Status) {
			continue
		}
		if !matchesEnum(filter.PaymentStatus, b.PaymentStatus) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesQuery(b models.Booking, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), query) ||
		strings.Contains(strings.ToLower(b.CustomerName), query) ||
		strings.Contains(strings.ToLower(b.BookingNumber), query)
}

func matchesEnum(want, got string) bool {
	return want == "" || want == "all" || want == got
}
