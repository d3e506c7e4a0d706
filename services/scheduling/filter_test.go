package scheduling

import (
	"testing"

	"freeflow/models"
)

func sampleBookings() []models.Booking {
	return []models.Booking{
		{
			ID:            "1",
			BookingNumber: "BK-AAA1",
			Title:         "Strategy Session",
			CustomerName:  "Dana Reyes",
			BookingType:   models.BookingTypeConsultation,
			Status:        models.BookingStatusConfirmed,
			PaymentStatus: models.PaymentStatusPaid,
		},
		{
			ID:            "2",
			BookingNumber: "BK-BBB2",
			Title:         "Discovery Call",
			CustomerName:  "Lee Okafor",
			BookingType:   models.BookingTypeConsultation,
			Status:        models.BookingStatusPending,
			PaymentStatus: models.PaymentStatusUnpaid,
		},
		{
			ID:            "3",
			BookingNumber: "BK-CCC3",
			Title:         "Workshop",
			CustomerName:  "Priya Shah",
			BookingType:   models.BookingTypeClass,
			Status:        models.BookingStatusCompleted,
			PaymentStatus: models.PaymentStatusPaid,
		},
		{
			ID:            "4",
			BookingNumber: "BK-DDD4",
			Title:         "Studio Rental",
			CustomerName:  "Dana Okafor",
			BookingType:   models.BookingTypeRental,
			Status:        models.BookingStatusCancelled,
			PaymentStatus: models.PaymentStatusPartial,
		},
	}
}

func ids(bookings []models.Booking) []string {
	out := make([]string, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}

func equalIDs(got []models.Booking, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, b := range got {
		if b.ID != want[i] {
			return false
		}
	}
	return true
}

func TestFilterBookings_IdentityFilter(t *testing.T) {
	bookings := sampleBookings()
	for _, f := range []models.BookingFilter{
		{},
		{BookingType: "all", Status: "all", PaymentStatus: "all"},
	} {
		got := FilterBookings(bookings, f)
		if !equalIDs(got, []string{"1", "2", "3", "4"}) {
			t.Errorf("filter %+v dropped bookings: got %v", f, ids(got))
		}
	}
}

func TestFilterBookings_Query(t *testing.T) {
	bookings := sampleBookings()
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title match case-insensitive", "strategy", []string{"1"}},
		{"customer surname", "okafor", []string{"2", "4"}},
		{"booking number", "bk-ccc", []string{"3"}},
		{"no match", "XYZ-NOMATCH", []string{}},
		{"whitespace only is a wildcard", "   ", []string{"1", "2", "3", "4"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterBookings(bookings, models.BookingFilter{Query: tc.query})
			if !equalIDs(got, tc.want) {
				t.Errorf("query %q: got %v, want %v", tc.query, ids(got), tc.want)
			}
		})
	}
}

func TestFilterBookings_EnumPredicates(t *testing.T) {
	bookings := sampleBookings()
	tests := []struct {
		name   string
		filter models.BookingFilter
		want   []string
	}{
		{"by type", models.BookingFilter{BookingType: models.BookingTypeConsultation}, []string{"1", "2"}},
		{"by status", models.BookingFilter{Status: models.BookingStatusCompleted}, []string{"3"}},
		{"by payment status", models.BookingFilter{PaymentStatus: models.PaymentStatusPaid}, []string{"1", "3"}},
		{"unknown enum value matches nothing", models.BookingFilter{Status: "archived"}, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterBookings(bookings, tc.filter)
			if !equalIDs(got, tc.want) {
				t.Errorf("filter %+v: got %v, want %v", tc.filter, ids(got), tc.want)
			}
		})
	}
}

func TestFilterBookings_PredicatesAreANDed(t *testing.T) {
	got := FilterBookings(sampleBookings(), models.BookingFilter{
		Query:         "dana",
		PaymentStatus: models.PaymentStatusPartial,
	})
	if !equalIDs(got, []string{"4"}) {
		t.Errorf("got %v, want [4]", ids(got))
	}
}

func TestFilterBookings_OrderIndependent(t *testing.T) {
	bookings := sampleBookings()
	combined := FilterBookings(bookings, models.BookingFilter{
		Query:  "okafor",
		Status: models.BookingStatusPending,
	})
	chained := FilterBookings(
		FilterBookings(bookings, models.BookingFilter{Status: models.BookingStatusPending}),
		models.BookingFilter{Query: "okafor"},
	)
	if !equalIDs(combined, ids(chained)) {
		t.Errorf("combined %v != chained %v", ids(combined), ids(chained))
	}
}

func TestFilterBookings_DoesNotMutateInput(t *testing.T) {
	bookings := sampleBookings()
	snapshot := sampleBookings()

	FilterBookings(bookings, models.BookingFilter{Query: "okafor", Status: "all"})

	for i := range bookings {
		if bookings[i] != snapshot[i] {
			t.Errorf("booking %d mutated: %+v", i, bookings[i])
		}
	}
}
