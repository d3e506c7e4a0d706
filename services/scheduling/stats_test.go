package scheduling

import (
	"testing"

	"freeflow/models"
)

func TestAggregateBookingStats_Empty(t *testing.T) {
	stats := AggregateBookingStats(nil)
	if stats.Total != 0 || stats.Confirmed != 0 || stats.Pending != 0 || stats.Completed != 0 || stats.Cancelled != 0 {
		t.Errorf("empty input produced nonzero counters: %+v", stats)
	}
	if stats.TotalRevenue != 0 || stats.PaidRevenue != 0 || stats.PendingPayments != 0 {
		t.Errorf("empty input produced nonzero revenue: %+v", stats)
	}
	if stats.NoShowRate != "0" {
		t.Errorf("NoShowRate = %q, want \"0\"", stats.NoShowRate)
	}
	if stats.ConversionRate != "0" {
		t.Errorf("ConversionRate = %q, want \"0\"", stats.ConversionRate)
	}
}

func TestAggregateBookingStats_Scenario(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingStatusConfirmed, Price: 100, PaymentStatus: models.PaymentStatusPaid, DurationMinutes: 60},
		{Status: models.BookingStatusConfirmed, Price: 150, PaymentStatus: models.PaymentStatusPaid, DurationMinutes: 30},
		{Status: models.BookingStatusPending, Price: 0, PaymentStatus: models.PaymentStatusUnpaid, DurationMinutes: 45, BalanceDue: 0},
		{Status: models.BookingStatusCancelled, Price: 50, PaymentStatus: models.PaymentStatusUnpaid, DurationMinutes: 45, BalanceDue: 50},
	}
	stats := AggregateBookingStats(bookings)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Confirmed != 2 || stats.Pending != 1 || stats.Cancelled != 1 || stats.Completed != 0 {
		t.Errorf("status counters wrong: %+v", stats)
	}
	if stats.TotalRevenue != 300 {
		t.Errorf("TotalRevenue = %v, want 300", stats.TotalRevenue)
	}
	if stats.PaidRevenue != 250 {
		t.Errorf("PaidRevenue = %v, want 250", stats.PaidRevenue)
	}
	if stats.PendingPayments != 50 {
		t.Errorf("PendingPayments = %v, want 50", stats.PendingPayments)
	}
	if stats.NoShowRate != "25.0" {
		t.Errorf("NoShowRate = %q, want \"25.0\"", stats.NoShowRate)
	}
	if stats.ConversionRate != "0.0" {
		t.Errorf("ConversionRate = %q, want \"0.0\"", stats.ConversionRate)
	}
	if stats.AvgDuration != 45 {
		t.Errorf("AvgDuration = %d, want 45", stats.AvgDuration)
	}
}

func TestAggregateBookingStats_TotalMatchesLength(t *testing.T) {
	for n := 0; n <= 7; n++ {
		bookings := make([]models.Booking, n)
		for i := range bookings {
			bookings[i] = models.Booking{Status: models.BookingStatusPending}
		}
		if got := AggregateBookingStats(bookings).Total; got != n {
			t.Errorf("Total = %d for %d bookings", got, n)
		}
	}
}

func TestAggregateBookingStats_DoesNotMutateInput(t *testing.T) {
	bookings := []models.Booking{
		{ID: "a", Status: models.BookingStatusConfirmed, Price: 100},
		{ID: "b", Status: models.BookingStatusCancelled, Price: 50},
	}
	snapshot := make([]models.Booking, len(bookings))
	copy(snapshot, bookings)

	AggregateBookingStats(bookings)

	for i := range bookings {
		if bookings[i] != snapshot[i] {
			t.Errorf("booking %d mutated: %+v, want %+v", i, bookings[i], snapshot[i])
		}
	}
}

func TestAggregateBookingStats_RatioPrecision(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingStatusCancelled},
		{Status: models.BookingStatusCompleted},
		{Status: models.BookingStatusCompleted},
	}
	stats := AggregateBookingStats(bookings)
	if stats.NoShowRate != "33.3" {
		t.Errorf("NoShowRate = %q, want \"33.3\"", stats.NoShowRate)
	}
	if stats.ConversionRate != "66.7" {
		t.Errorf("ConversionRate = %q, want \"66.7\"", stats.ConversionRate)
	}
	if stats.NoShowRatio <= 33.3 || stats.NoShowRatio >= 33.4 {
		t.Errorf("NoShowRatio = %v, want ~33.33", stats.NoShowRatio)
	}
}
